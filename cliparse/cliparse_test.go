// cliparse/cliparse_test.go
package cliparse

import (
	"os"
	"testing"
)

func TestParseFlags_EnvVars(t *testing.T) {
	// Set env vars
	os.Setenv("PORT", "9000")
	os.Setenv("CANDIDATES", "Candidate A,Candidate B")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if len(cfg.Candidates) != 2 || cfg.Candidates[0] != "Candidate A" {
		t.Errorf("unexpected candidates: %v", cfg.Candidates)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	os.Setenv("PORT", "9000")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{"-p", "8080", "-c", "Alpha,Beta"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
}

func TestParseFlags_DefaultPort(t *testing.T) {
	defer os.Clearenv()
	os.Clearenv()

	cfg, err := ParseFlags([]string{"-c", "Alpha,Beta"})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 3318 {
		t.Errorf("expected default port 3318, got %d", cfg.Port)
	}
}

func TestParseFlags_MissingCandidates(t *testing.T) {
	defer os.Clearenv()
	os.Clearenv()

	if _, err := ParseFlags([]string{}); err == nil {
		t.Error("expected error when no candidates configured")
	}
}

func TestParseFlags_TrimsWhitespace(t *testing.T) {
	defer os.Clearenv()
	os.Clearenv()

	cfg, err := ParseFlags([]string{"-c", " Alpha , Beta "})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Candidates[0] != "Alpha" || cfg.Candidates[1] != "Beta" {
		t.Errorf("expected trimmed candidates, got %v", cfg.Candidates)
	}
}

func TestParseFlags_EmptyCandidateEntry(t *testing.T) {
	defer os.Clearenv()
	os.Clearenv()

	if _, err := ParseFlags([]string{"-c", "Alpha,,Beta"}); err == nil {
		t.Error("expected error for empty candidate entry")
	}
}

func TestParseFlags_InvalidPortEnv(t *testing.T) {
	os.Setenv("PORT", "not-a-number")
	os.Setenv("CANDIDATES", "Alpha")
	defer os.Clearenv()

	if _, err := ParseFlags([]string{}); err == nil {
		t.Error("expected error for invalid PORT env variable")
	}
}
