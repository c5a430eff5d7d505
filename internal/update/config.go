package update

import (
	"os"
	"strconv"
	"strings"
)

type RuntimeConfig struct {
	DBPath              string
	NotificationSeconds int
	AssistantEnabled    bool
	AssistantSeed       int64
}

func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		DBPath:              "taskflow.db",
		NotificationSeconds: 3,
		AssistantEnabled:    true,
		AssistantSeed:       0,
	}
}

func RuntimeConfigFromEnv(base RuntimeConfig) RuntimeConfig {
	cfg := base
	if v := strings.TrimSpace(os.Getenv("TASKFLOW_DB_PATH")); v != "" {
		cfg.DBPath = v
	}
	if v, ok := getEnvInt("TASKFLOW_NOTIFICATION_SECONDS"); ok && v > 0 {
		cfg.NotificationSeconds = v
	}
	if v, ok := getEnvBool("TASKFLOW_ASSISTANT"); ok {
		cfg.AssistantEnabled = v
	}
	if v, ok := getEnvInt("TASKFLOW_ASSISTANT_SEED"); ok {
		cfg.AssistantSeed = int64(v)
	}
	return cfg
}

func getEnvInt(name string) (int, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

func getEnvBool(name string) (bool, bool) {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return false, false
	}
	switch raw {
	case "1", "true", "yes", "y", "on":
		return true, true
	case "0", "false", "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}
