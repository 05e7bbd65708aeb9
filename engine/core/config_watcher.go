package core

import (
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// ConfigWatcher reloads a configuration file whenever it is written. The
// parent directory is watched so that editors which replace the file by
// renaming are picked up as well.
type ConfigWatcher struct {
	path      string
	fsnotify  *fsnotify.Watcher
	configs   chan *Config
	errors    chan error
	done      chan struct{}
	closeOnce sync.Once
}

func NewConfigWatcher(path string) (*ConfigWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsWatch.Add(filepath.Dir(abs)); err != nil {
		fsWatch.Close()
		return nil, err
	}

	cw := &ConfigWatcher{
		path:     abs,
		fsnotify: fsWatch,
		configs:  make(chan *Config),
		errors:   make(chan error),
		done:     make(chan struct{}),
	}
	go cw.start()
	return cw, nil
}

// Configs delivers every successfully reloaded configuration. The channel is
// closed once the watcher is closed.
func (cw *ConfigWatcher) Configs() <-chan *Config {
	return cw.configs
}

// Errors delivers reload and watch failures.
func (cw *ConfigWatcher) Errors() <-chan error {
	return cw.errors
}

func (cw *ConfigWatcher) Close() error {
	var err error
	cw.closeOnce.Do(func() {
		close(cw.done)
		err = cw.fsnotify.Close()
	})
	return err
}

func (cw *ConfigWatcher) start() {
	defer close(cw.configs)
	defer close(cw.errors)
	for {
		select {
		case e, ok := <-cw.fsnotify.Events:
			if !ok {
				return
			}
			if filepath.Clean(e.Name) != cw.path || e.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}
			cfg, err := LoadConfig(cw.path)
			if err != nil {
				LogWarn("could not reload %s: %s", cw.path, err)
				cw.sendError(err)
				continue
			}
			LogDebug("reloaded %s", cw.path)
			select {
			case cw.configs <- cfg:
			case <-cw.done:
				return
			}

		case err, ok := <-cw.fsnotify.Errors:
			if !ok {
				return
			}
			LogError(err.Error())
			cw.sendError(err)

		case <-cw.done:
			return
		}
	}
}

// sendError hands err to a reader if there is one. Errors nobody waits for
// are only logged.
func (cw *ConfigWatcher) sendError(err error) {
	select {
	case cw.errors <- err:
	default:
	}
}
