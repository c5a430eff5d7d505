package update

import "testing"

func TestRuntimeConfigDefaults(t *testing.T) {
	cfg := DefaultRuntimeConfig()
	if cfg.DBPath != "taskflow.db" {
		t.Fatalf("unexpected db path default: %+v", cfg)
	}
	if cfg.NotificationSeconds != 3 {
		t.Fatalf("unexpected notification default: %+v", cfg)
	}
	if !cfg.AssistantEnabled || cfg.AssistantSeed != 0 {
		t.Fatalf("unexpected assistant defaults: %+v", cfg)
	}
}

func TestRuntimeConfigFromEnv(t *testing.T) {
	t.Setenv("TASKFLOW_DB_PATH", "state/flow.db")
	t.Setenv("TASKFLOW_NOTIFICATION_SECONDS", "7")
	t.Setenv("TASKFLOW_ASSISTANT", "off")
	t.Setenv("TASKFLOW_ASSISTANT_SEED", "42")

	cfg := RuntimeConfigFromEnv(DefaultRuntimeConfig())
	if cfg.DBPath != "state/flow.db" {
		t.Fatalf("unexpected db path override: %+v", cfg)
	}
	if cfg.NotificationSeconds != 7 {
		t.Fatalf("unexpected notification override: %+v", cfg)
	}
	if cfg.AssistantEnabled {
		t.Fatal("expected assistant disabled from env")
	}
	if cfg.AssistantSeed != 42 {
		t.Fatalf("unexpected assistant seed: %+v", cfg)
	}
}

func TestRuntimeConfigFromEnvIgnoresInvalid(t *testing.T) {
	t.Setenv("TASKFLOW_NOTIFICATION_SECONDS", "not-a-number")
	t.Setenv("TASKFLOW_ASSISTANT", "maybe")

	cfg := RuntimeConfigFromEnv(DefaultRuntimeConfig())
	if cfg.NotificationSeconds != 3 {
		t.Fatalf("expected default seconds for invalid env, got %+v", cfg)
	}
	if !cfg.AssistantEnabled {
		t.Fatal("expected assistant default for invalid env")
	}
}
