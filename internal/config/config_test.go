package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Database.SnapshotsKept != 10 {
		t.Errorf("snapshots_kept = %d, want 10", cfg.Database.SnapshotsKept)
	}
	if cfg.Selector.ReviewCapRatio != 0.2 || cfg.Selector.WeakCapRatio != 0.4 {
		t.Errorf("stage caps = %v/%v, want 0.2/0.4", cfg.Selector.ReviewCapRatio, cfg.Selector.WeakCapRatio)
	}
	if cfg.Review.DefaultEase != 2.5 || cfg.Review.MinEase != 1.3 {
		t.Errorf("ease params = %v/%v, want 2.5/1.3", cfg.Review.DefaultEase, cfg.Review.MinEase)
	}
	if cfg.Exam.Questions != 150 || cfg.Exam.TimeLimitMin != 180 {
		t.Errorf("exam shape = %d/%d, want 150/180", cfg.Exam.Questions, cfg.Exam.TimeLimitMin)
	}
	if cfg.Predictor.MinAnswers != 100 {
		t.Errorf("min_answers = %d, want 100", cfg.Predictor.MinAnswers)
	}
}

func TestLoadFileOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
database:
  path: /tmp/custom.db
  snapshots_kept: 3
exam:
  questions: 60
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Database.Path != "/tmp/custom.db" {
		t.Errorf("path = %q, want /tmp/custom.db", cfg.Database.Path)
	}
	if cfg.Database.SnapshotsKept != 3 {
		t.Errorf("snapshots_kept = %d, want 3", cfg.Database.SnapshotsKept)
	}
	if cfg.Exam.Questions != 60 {
		t.Errorf("questions = %d, want 60", cfg.Exam.Questions)
	}
	// Untouched keys keep their defaults.
	if cfg.Exam.TimeLimitMin != 180 {
		t.Errorf("time_limit_min = %d, want the 180 default", cfg.Exam.TimeLimitMin)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("PREPDRILL_DB", "/tmp/env.db")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Database.Path != "/tmp/env.db" {
		t.Errorf("path = %q, want /tmp/env.db", cfg.Database.Path)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("database: [not: a: map"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load should reject malformed YAML")
	}
}
