//go:build !integration

package config

import (
	"reflect"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"APP_ENV", "PORT", "CORS_ALLOW_ORIGINS", "SCORING_SEED", "SCORING_SAMPLE_COUNT", "SCORING_DEFAULT_PROFILE", "SCORING_PROFILES_FILE"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != "8080" || cfg.App.Environment != "development" {
		t.Errorf("server/app = %+v %+v", cfg.Server, cfg.App)
	}
	if cfg.Scoring.Seed != 7 || cfg.Scoring.SampleCount != 400 || cfg.Scoring.DefaultProfile != "extended" {
		t.Errorf("scoring = %+v", cfg.Scoring)
	}
	if want := []string{"http://localhost:3000", "http://localhost:8080"}; !reflect.DeepEqual(cfg.Server.CORSAllowOrigins, want) {
		t.Errorf("origins = %v", cfg.Server.CORSAllowOrigins)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SCORING_SEED", "11")
	t.Setenv("SCORING_SAMPLE_COUNT", "50")
	t.Setenv("CORS_ALLOW_ORIGINS", " https://a.example , ,https://b.example")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Scoring.Seed != 11 || cfg.Scoring.SampleCount != 50 {
		t.Errorf("scoring = %+v", cfg.Scoring)
	}
	if len(cfg.Server.CORSAllowOrigins) != 2 {
		t.Errorf("origins = %v", cfg.Server.CORSAllowOrigins)
	}
}

func TestLoad_InvalidNumbers(t *testing.T) {
	tests := map[string]string{
		"SCORING_SEED":         "seven",
		"SCORING_SAMPLE_COUNT": "-1",
	}
	for key, val := range tests {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, val)
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%s", key, val)
			}
		})
	}
}
