package config

import "testing"

func TestParseEvalFlag(t *testing.T) {
	cfg, err := Parse([]string{"-e", "(+ 1 2)"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.EvalExpr != "(+ 1 2)" {
		t.Fatalf("EvalExpr = %q", cfg.EvalExpr)
	}
	if cfg.NoAutoload {
		t.Fatal("NoAutoload should default false")
	}
}

func TestParseCalcFlag(t *testing.T) {
	cfg, err := Parse([]string{"-c", "1+2"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.CalcExpr != "1+2" {
		t.Fatalf("CalcExpr = %q", cfg.CalcExpr)
	}
}

func TestParseMutuallyExclusive(t *testing.T) {
	if _, err := Parse([]string{"-e", "1", "-c", "2"}); err == nil {
		t.Fatal("expected error for -e and -c together")
	}
}

func TestParseNoAutoloadAndFile(t *testing.T) {
	cfg, err := Parse([]string{"-n", "script.scm"})
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.NoAutoload {
		t.Fatal("expected -n to set NoAutoload")
	}
	if cfg.File != "script.scm" {
		t.Fatalf("File = %q", cfg.File)
	}
}

func TestParseMaxOutput(t *testing.T) {
	cfg, err := Parse([]string{"-max-output", "10MB"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.MaxOutput != 10_000_000 {
		t.Fatalf("MaxOutput = %d, want 10000000", cfg.MaxOutput)
	}
}

func TestFormatSizeRoundTrips(t *testing.T) {
	s := FormatSize(1_000_000)
	if s == "" {
		t.Fatal("expected non-empty human size")
	}
	cfg, err := Parse([]string{"-max-output", s})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.MaxOutput != 1_000_000 {
		t.Fatalf("FormatSize(1000000) = %q parses back to %d", s, cfg.MaxOutput)
	}
}
