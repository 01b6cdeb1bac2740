package main

import (
	"log"
	"path/filepath"

	"github.com/younwookim/nukem/internal/application/session"
	"github.com/younwookim/nukem/internal/application/system"
	"github.com/younwookim/nukem/internal/domain/entity"
	"github.com/younwookim/nukem/internal/infrastructure/config"
)

// watchLevels rebuilds the played level whenever its file changes and hands
// a fresh session to swap. Edits that fail to load or validate are logged and
// the running level is kept.
func watchLevels(w *config.LevelWatcher, loader *config.Loader, tuning *config.Tuning, levelName string, swap func(*session.Session)) {
	want := config.LevelName(levelName)
	for {
		select {
		case p, ok := <-w.Events:
			if !ok {
				return
			}
			if config.LevelName(p) != want {
				continue
			}
			level, err := reloadLevel(loader, tuning, p)
			if err != nil {
				log.Printf("Ignoring level edit: %v", err)
				continue
			}
			log.Printf("Reloaded level %q from %s", level.Name, p)
			swap(session.New(level, tuning))
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			log.Printf("Level watcher error: %v", err)
		}
	}
}

// reloadLevel loads and validates the level file at p
func reloadLevel(loader *config.Loader, tuning *config.Tuning, p string) (*entity.Level, error) {
	cfg, err := loader.LoadLevel(filepath.Base(p))
	if err != nil {
		return nil, err
	}
	return system.BuildLevel(cfg, tuning)
}
