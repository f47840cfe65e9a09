package config

import "testing"

func TestGetEnv(t *testing.T) {
	t.Setenv("ROCKFALL_TEST_KEY", "value")
	if got := GetEnv("ROCKFALL_TEST_KEY", "fallback"); got != "value" {
		t.Fatalf("GetEnv = %q, want %q", got, "value")
	}
	if got := GetEnv("ROCKFALL_TEST_MISSING", "fallback"); got != "fallback" {
		t.Fatalf("GetEnv for unset key = %q, want fallback", got)
	}
}

func TestGetEnvFloat(t *testing.T) {
	t.Setenv("ROCKFALL_TEST_FLOAT", "1.5")
	if got := GetEnvFloat("ROCKFALL_TEST_FLOAT", 9); got != 1.5 {
		t.Fatalf("GetEnvFloat = %f, want 1.5", got)
	}

	t.Setenv("ROCKFALL_TEST_FLOAT", "not-a-number")
	if got := GetEnvFloat("ROCKFALL_TEST_FLOAT", 9); got != 9 {
		t.Fatalf("GetEnvFloat for garbage = %f, want fallback 9", got)
	}
}

func TestDefaultRules(t *testing.T) {
	r := DefaultRules()
	if r.MinAsteroidRadius <= 0 {
		t.Fatal("minimum asteroid radius must be positive")
	}
	if r.SplitAngleMin >= r.SplitAngleMax {
		t.Fatal("split angle range is empty")
	}
	if r.SplitSpeedScale <= 1 {
		t.Fatal("split speed scale should escalate fragment speed")
	}
	if want := r.MinAsteroidRadius * float64(r.AsteroidKinds); r.MaxAsteroidRadius() != want {
		t.Fatalf("MaxAsteroidRadius = %f, want %f", r.MaxAsteroidRadius(), want)
	}
}

func TestRulesFromEnvOverrides(t *testing.T) {
	t.Setenv("ROCKFALL_SPAWN_INTERVAL", "2.5")
	t.Setenv("ROCKFALL_ASTEROID_KINDS", "5")

	r := RulesFromEnv()
	if r.SpawnInterval != 2.5 {
		t.Fatalf("SpawnInterval = %f, want env override 2.5", r.SpawnInterval)
	}
	if r.AsteroidKinds != 5 {
		t.Fatalf("AsteroidKinds = %d, want env override 5", r.AsteroidKinds)
	}
	if r.SplitSpeedScale != DefaultRules().SplitSpeedScale {
		t.Fatal("untouched rules should keep their defaults")
	}
}
