// Package config loads and watches the vegliad configuration file
// (config.yaml).
//
// Top-level types:
//   - Config{Server, Source, Monitoring, Notify, Log}: full config tree
//     parsed from YAML
//   - ServerConfig: http_port, auth (apikey|none, key resolved from an
//     environment variable), ui_dir
//   - SourceConfig: type (local|prometheus), endpoint, auth, tls
//   - Monitoring: the runtime-adjustable health-check settings; Merge
//     applies a MonitoringPatch, Validate rejects values the engine
//     cannot run with
//   - NotifyConfig: delivery buffer size and webhook targets
//   - LogConfig: minimum log level
//
// Load(path) reads the YAML file, applies defaults, then validates. A
// missing file yields the pure defaults so the daemon can start without
// any configuration at all.
//
// Watch(ctx, path, onChange) uses fsnotify to detect file changes and
// calls onChange with the newly parsed Config. It handles the
// rename-then-create pattern used by atomic-save editors (vim, VS Code)
// by re-adding the watch after each reload.
package config
