package main

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bear-adventure/internal/stage"
)

// stageReloader takes a freshly loaded stage list.
type stageReloader interface {
	ReloadStages(stages []*stage.Stage)
}

// watchStages reloads every stage in dir into game when a stage file
// changes. A set with an invalid stage is rejected and the old one kept.
func watchStages(dir string, game stageReloader, logger *log.Logger) (stop func(), err error) {
	w, err := stage.NewWatcher(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot watch %s: %w", dir, err)
	}

	go func() {
		for {
			select {
			case path, ok := <-w.Events:
				if !ok {
					return
				}
				stages, err := reloadStages(dir)
				if err != nil {
					logger.Warn("stage reload failed", "file", path, "err", err)
					continue
				}
				game.ReloadStages(stages)
				logger.Info("stages reloaded", "file", path, "count", len(stages))
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				logger.Warn("stage watcher error", "err", err)
			}
		}
	}()

	return func() { _ = w.Close() }, nil
}

// reloadStages loads and validates every stage in dir.
func reloadStages(dir string) ([]*stage.Stage, error) {
	stages, err := stage.LoadDir(dir)
	if err != nil {
		return nil, err
	}
	if len(stages) == 0 {
		return nil, errors.New("no stages found")
	}
	var errs []error
	for _, s := range stages {
		if err := stage.Validate(s); err != nil {
			errs = append(errs, err)
		}
	}
	return stages, errors.Join(errs...)
}
