package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/taskflowhq/taskflow/internal/session"
	"github.com/taskflowhq/taskflow/internal/storage"
	"github.com/taskflowhq/taskflow/internal/tasks"
	"github.com/taskflowhq/taskflow/internal/update"
)

func main() {
	cfg := update.RuntimeConfigFromEnv(update.DefaultRuntimeConfig())

	var durable storage.KV
	kv, err := storage.OpenSQLite(cfg.DBPath)
	if err == nil {
		durable = kv
		defer kv.Close()
	}
	// with no durable store the app still runs, in-memory only
	shim := storage.NewShim(durable)

	store := tasks.NewStore(shim)
	store.Load()
	sess := session.NewManager(shim)
	sess.Load()

	program := tea.NewProgram(update.NewModelWithConfig(store, sess, cfg))
	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "taskflow failed: %v\n", err)
		os.Exit(1)
	}
}
