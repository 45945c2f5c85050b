package search

import (
	"math"
	"testing"

	"github.com/kailas-cloud/letterdex/internal/domain/search/result"
)

func TestCompareScores(t *testing.T) {
	nan := math.NaN()
	tests := []struct {
		a, b float64
		want int
	}{
		{0.9, 0.1, -1},
		{0.1, 0.9, 1},
		{0.5, 0.5, 0},
		{nan, 0.1, 1},
		{0.1, nan, -1},
		{nan, nan, 0},
		{nan, -1, 1},
	}
	for _, tt := range tests {
		if got := compareScores(tt.a, tt.b); got != tt.want {
			t.Errorf("compareScores(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestRank_NaNSortsLast(t *testing.T) {
	results := []result.Result{
		result.New("nan", math.NaN(), 0, true),
		result.New("low", 0.1, 1, true),
		result.New("high", 0.9, 2, true),
		result.New("nan2", math.NaN(), 3, true),
	}

	got := rank(results, 4)
	want := []string{"high", "low", "nan", "nan2"}
	for i, w := range want {
		if got[i].Text() != w {
			t.Errorf("rank[%d] = %q, want %q", i, got[i].Text(), w)
		}
	}
}

func TestRank_TieBreaks(t *testing.T) {
	results := []result.Result{
		result.New("undef", 0, 0, false),
		result.New("c", 0.5, 3, true),
		result.New("zero", 0, 1, true),
		result.New("a", 0.5, 2, true),
	}

	got := rank(results, 10)
	want := []string{"a", "c", "zero", "undef"}
	for i, w := range want {
		if got[i].Text() != w {
			t.Errorf("rank[%d] = %q, want %q", i, got[i].Text(), w)
		}
	}
}

func TestRank_Truncates(t *testing.T) {
	results := []result.Result{
		result.New("a", 0.1, 0, true),
		result.New("b", 0.2, 1, true),
		result.New("c", 0.3, 2, true),
	}

	got := rank(results, 2)
	if len(got) != 2 || got[0].Text() != "c" || got[1].Text() != "b" {
		t.Errorf("rank(..., 2) = %v", got)
	}
}
