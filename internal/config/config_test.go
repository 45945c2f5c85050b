package config

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func validConfig() Config {
	cfg := Config{
		HTTP:   HTTPConfig{Port: 8080},
		Corpus: CorpusConfig{Documents: []string{"I like apples"}},
	}
	cfg.ApplyDefaults()
	return cfg
}

func TestParse_Full(t *testing.T) {
	data := []byte(`
http:
  port: 9090
logging:
  level: debug
auth:
  api_keys: ["k1"]
corpus:
  documents:
    - I like apples
    - I like pears
  keep_blank: true
search:
  default_n: 3
  max_n: 50
  min_score: 0.25
`)
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.HTTP.Port != 9090 {
		t.Errorf("port = %d", cfg.HTTP.Port)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("level = %q", cfg.Logging.Level)
	}
	if len(cfg.Auth.APIKeys) != 1 || cfg.Auth.APIKeys[0] != "k1" {
		t.Errorf("api_keys = %v", cfg.Auth.APIKeys)
	}
	if len(cfg.Corpus.Documents) != 2 || !cfg.Corpus.KeepBlank {
		t.Errorf("corpus = %+v", cfg.Corpus)
	}
	if cfg.Search.DefaultN != 3 || cfg.Search.MaxN != 50 || cfg.Search.MinScore != 0.25 {
		t.Errorf("search = %+v", cfg.Search)
	}
}

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse([]byte("corpus:\n  file: docs.txt\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.HTTP.Port != 8080 {
		t.Errorf("default port = %d, want 8080", cfg.HTTP.Port)
	}
	if cfg.HTTP.ReadTimeoutSec != 10 || cfg.HTTP.WriteTimeoutSec != 10 || cfg.HTTP.ShutdownSec != 10 {
		t.Errorf("default timeouts = %+v", cfg.HTTP)
	}
	if cfg.Search.DefaultN != 10 || cfg.Search.MaxN != 100 {
		t.Errorf("default search = %+v", cfg.Search)
	}
}

func TestParse_DefaultNCappedAtMaxN(t *testing.T) {
	cfg, err := Parse([]byte("corpus: {documents: [a]}\nsearch: {default_n: 0, max_n: 5}\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Search.DefaultN != 5 || cfg.Search.MaxN != 5 {
		t.Errorf("search = %+v, want default_n 5, max_n 5", cfg.Search)
	}
}

func TestParse_NaNMinScore(t *testing.T) {
	_, err := Parse([]byte("corpus: {documents: [a]}\nsearch: {min_score: .nan}\n"))
	if err == nil {
		t.Fatal("expected error for NaN min_score")
	}
}

func TestParse_EnvExpansion(t *testing.T) {
	t.Setenv("LETTERDEX_TEST_PORT", "7070")

	cfg, err := Parse([]byte(`
http:
  port: ${LETTERDEX_TEST_PORT}
corpus:
  file: ${LETTERDEX_TEST_UNSET:-/tmp/corpus.txt}
`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.HTTP.Port != 7070 {
		t.Errorf("port = %d, want 7070", cfg.HTTP.Port)
	}
	if cfg.Corpus.File != "/tmp/corpus.txt" {
		t.Errorf("file = %q, want default", cfg.Corpus.File)
	}
}

func TestParse_InvalidYAML(t *testing.T) {
	if _, err := Parse([]byte("http: [")); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.yaml")
	if err := os.WriteFile(path, []byte("corpus:\n  documents: [a]\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if len(cfg.Corpus.Documents) != 1 {
		t.Errorf("documents = %v", cfg.Corpus.Documents)
	}
}

func TestLoadFile_Missing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestValidate_InvalidPort(t *testing.T) {
	cfg := validConfig()
	cfg.HTTP.Port = 70000

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for invalid port")
	}
}

func TestValidate_MissingCorpus(t *testing.T) {
	cfg := validConfig()
	cfg.Corpus = CorpusConfig{}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for missing corpus")
	}
	if !strings.Contains(err.Error(), "corpus") {
		t.Errorf("error = %q", err)
	}
}

func TestValidate_SearchLimits(t *testing.T) {
	tests := []struct {
		name   string
		search SearchConfig
	}{
		{"negative default", SearchConfig{DefaultN: -1, MaxN: 10}},
		{"max below default", SearchConfig{DefaultN: 20, MaxN: 10}},
		{"min score above 1", SearchConfig{DefaultN: 1, MaxN: 10, MinScore: 1.5}},
		{"min score negative", SearchConfig{DefaultN: 1, MaxN: 10, MinScore: -0.5}},
		{"min score NaN", SearchConfig{DefaultN: 1, MaxN: 10, MinScore: math.NaN()}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.Search = tt.search
			if err := cfg.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestGetEnv(t *testing.T) {
	t.Setenv("ENV", "")
	if got := GetEnv(); got != "local" {
		t.Errorf("GetEnv() = %q, want local", got)
	}
	t.Setenv("ENV", "prod")
	if got := GetEnv(); got != "prod" {
		t.Errorf("GetEnv() = %q, want prod", got)
	}
}
