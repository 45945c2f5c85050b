package health

import (
	"context"
	"sort"
)

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates all components are operational.
	Healthy Status = "ok"
	// Degraded indicates partial failure.
	Degraded Status = "degraded"
)

// CheckResult represents an individual component health check outcome.
type CheckResult string

const (
	// CheckOK indicates a passing health check.
	CheckOK CheckResult = "ok"
	// CheckError indicates a failing health check.
	CheckError CheckResult = "error"
)

// Report aggregates health check results.
type Report struct {
	Status    Status
	Checks    map[string]CheckResult
	Documents int
}

// Service coordinates health checks.
type Service struct {
	index  IndexReader
	extras map[string]Checker
}

// New creates a Service for the given index.
func New(index IndexReader) *Service {
	return &Service{index: index, extras: make(map[string]Checker)}
}

// WithCheck registers an extra named check.
func (s *Service) WithCheck(name string, c Checker) *Service {
	if c != nil {
		s.extras[name] = c
	}
	return s
}

// Check runs every check. An empty index is reported as an index error:
// the service answers queries, but every answer is empty.
func (s *Service) Check(ctx context.Context) Report {
	checks := make(map[string]CheckResult, len(s.extras)+1)

	docs := s.index.Len()
	if docs > 0 {
		checks["index"] = CheckOK
	} else {
		checks["index"] = CheckError
	}

	names := make([]string, 0, len(s.extras))
	for name := range s.extras {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := s.extras[name].HealthCheck(ctx); err != nil {
			checks[name] = CheckError
		} else {
			checks[name] = CheckOK
		}
	}

	status := Healthy
	for _, v := range checks {
		if v == CheckError {
			status = Degraded
			break
		}
	}

	return Report{Status: status, Checks: checks, Documents: docs}
}
