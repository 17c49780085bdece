package config

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// settleDelay coalesces the burst of events an editor save produces.
const settleDelay = 100 * time.Millisecond

// Holder keeps the current configuration of a file and reloads it on
// request, on file changes and on SIGHUP.
type Holder struct {
	path   string
	logger zerolog.Logger

	mu        sync.RWMutex
	current   *Config
	changed   []func(*Config)
	attempted []func(error)

	reloadMu sync.Mutex
	stopOnce sync.Once
	done     chan struct{}
	wg       sync.WaitGroup
}

// NewHolder loads path and returns a holder for it.
func NewHolder(path string, logger zerolog.Logger) (*Holder, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("absolute path: %w", err)
	}
	cfg, err := Load(abs)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return &Holder{
		path:    abs,
		logger:  logger.With().Str("component", "config").Logger(),
		current: cfg,
		done:    make(chan struct{}),
	}, nil
}

// Get returns the current configuration.
func (h *Holder) Get() *Config {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.current
}

// Path returns the absolute path of the watched file.
func (h *Holder) Path() string { return h.path }

// OnChange registers fn to receive every successfully loaded configuration.
func (h *Holder) OnChange(fn func(*Config)) {
	h.mu.Lock()
	h.changed = append(h.changed, fn)
	h.mu.Unlock()
}

// OnReload registers fn to receive the outcome of every reload attempt,
// nil on success.
func (h *Holder) OnReload(fn func(error)) {
	h.mu.Lock()
	h.attempted = append(h.attempted, fn)
	h.mu.Unlock()
}

// Reload re-reads the file. A file that fails to load or validate leaves
// the current configuration in place and skips OnChange listeners.
func (h *Holder) Reload() error {
	h.reloadMu.Lock()
	defer h.reloadMu.Unlock()

	next, err := Load(h.path)
	if err != nil {
		err = fmt.Errorf("reload config: %w", err)
		h.logger.Error().Err(err).Msg("keeping previous configuration")
		h.report(err)
		return err
	}

	h.mu.Lock()
	prev := h.current
	h.current = next
	listeners := append([]func(*Config){}, h.changed...)
	h.mu.Unlock()

	changes := Diff(prev, next)
	for _, c := range changes {
		ev := h.logger.Info()
		if !c.Reloadable {
			ev = h.logger.Warn().Bool("restart_required", true)
		}
		ev.Str("field", c.Field).Str("old", c.Old).Str("new", c.New).Msg("config changed")
	}
	for _, fn := range listeners {
		fn(next)
	}
	h.report(nil)

	h.logger.Info().Int("changes", len(changes)).Msg("configuration reloaded")
	return nil
}

func (h *Holder) report(err error) {
	h.mu.RLock()
	listeners := append([]func(error){}, h.attempted...)
	h.mu.RUnlock()
	for _, fn := range listeners {
		fn(err)
	}
}

// WatchFile reloads whenever the file is written or replaced. The parent
// directory is watched so atomic renames are seen too.
func (h *Holder) WatchFile() error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(h.path)); err != nil {
		w.Close()
		return fmt.Errorf("watch directory: %w", err)
	}

	h.wg.Add(1)
	go func() {
		defer h.wg.Done()
		defer w.Close()
		h.watch(w)
	}()

	h.logger.Info().Str("path", h.path).Msg("watching config file")
	return nil
}

func (h *Holder) watch(w *fsnotify.Watcher) {
	settle := time.NewTimer(settleDelay)
	settle.Stop()
	defer settle.Stop()

	for {
		select {
		case ev, ok := <-w.Events:
			if !ok {
				return
			}
			if ev.Name != h.path || ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			h.logger.Debug().Str("op", ev.Op.String()).Msg("config file event")
			settle.Reset(settleDelay)

		case <-settle.C:
			h.Reload()

		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			h.logger.Error().Err(err).Msg("config watcher error")

		case <-h.done:
			return
		}
	}
}

// WatchSignals reloads on SIGHUP.
func (h *Holder) WatchSignals() {
	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)

	h.wg.Add(1)
	go func() {
		defer h.wg.Done()
		defer signal.Stop(hup)
		for {
			select {
			case <-hup:
				h.logger.Info().Msg("SIGHUP received")
				h.Reload()
			case <-h.done:
				return
			}
		}
	}()
}

// Stop ends file and signal watching and waits for the watchers to exit.
// It is safe to call more than once.
func (h *Holder) Stop() {
	h.stopOnce.Do(func() { close(h.done) })
	h.wg.Wait()
}
