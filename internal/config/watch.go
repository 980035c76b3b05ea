package config

import (
	"context"
	"log/slog"
	"time"

	"github.com/fsnotify/fsnotify"
)

// reloadQuiet is the minimum gap between reloads. An atomic editor save
// fires several fsnotify events for one edit; only the first triggers a
// reload.
const reloadQuiet = time.Second

// Watch monitors path and calls onChange with the newly loaded Config
// each time the file is rewritten. current is the config the daemon
// booted with, used to spot edits that cannot take effect until the next
// restart. Watch runs until ctx is cancelled.
//
// A reload that fails validation is logged and dropped; the previous
// config remains active and onChange is not called.
func Watch(ctx context.Context, path string, current *Config, onChange func(*Config)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(path); err != nil {
		return err
	}

	slog.Info("config: watching for changes", "path", path)

	prev := current
	var lastReload time.Time

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			// Editors often save via rename, which shows up as Create.
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if time.Since(lastReload) < reloadQuiet {
				continue
			}

			cfg, err := Load(path)
			if err != nil {
				slog.Error("config: reload failed, keeping previous config",
					"path", path, "err", err)
				continue
			}
			lastReload = time.Now()

			if prev != nil && needsRestart(prev, cfg) {
				slog.Warn("config: changes outside the monitoring section need a restart to apply",
					"path", path)
			}
			prev = cfg

			slog.Info("config: reloaded", "path", path)
			onChange(cfg)

			// An atomic save replaces the inode; watch the new one.
			_ = watcher.Add(path)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("config: watcher error", "err", err)
		}
	}
}

// needsRestart reports whether a and b differ in sections the daemon
// builds once at boot. Only the monitoring section hot reloads; the HTTP
// server, the metrics source, notification targets and the log level are
// fixed for the life of the process.
func needsRestart(a, b *Config) bool {
	if a.Server != b.Server || a.Source != b.Source || a.Log != b.Log {
		return true
	}
	if a.Notify.BufferSize != b.Notify.BufferSize {
		return true
	}
	if len(a.Notify.Webhooks) != len(b.Notify.Webhooks) {
		return true
	}
	for i := range a.Notify.Webhooks {
		if a.Notify.Webhooks[i] != b.Notify.Webhooks[i] {
			return true
		}
	}
	return false
}
