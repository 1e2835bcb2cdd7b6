package app

import (
	"github.com/levelupgamer/lu/internal/config"
	"github.com/levelupgamer/lu/internal/domain"
	"github.com/levelupgamer/lu/internal/log"
	"github.com/levelupgamer/lu/internal/paths"
	"github.com/levelupgamer/lu/internal/store"
)

// OpenStore opens the database named by the db_path config key.
// Commands call it through their Deps and close the store when done.
func OpenStore() (domain.Store, error) {
	dbPath, _ := config.Get("db_path")
	if dbPath == "" {
		dbPath = paths.DefaultDBPath()
	}

	st, err := store.New(dbPath)
	if err != nil {
		log.Error("app: open store %s: %v", dbPath, err)
		return nil, err
	}
	return st, nil
}

// InitLogging installs the global file logger when enable_log is true.
func InitLogging() {
	enabled, _ := config.Get("enable_log")
	if enabled != "true" {
		return
	}

	level, _ := config.Get("log_level")
	if err := log.Init(paths.LogFilePath(), log.ParseLevel(level)); err != nil {
		return
	}
	log.Debug("logging initialized at %s", log.ParseLevel(level))
}
