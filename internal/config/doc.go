// Package config handles loading the roverwatch client configuration.
//
// The Load function reads ~/.config/roverwatch/config.toml (or an explicit
// path) and falls back to hardcoded defaults when the file is missing. Only
// two settings exist:
//
//   - api_server: host:port of the roverwatch proxy (default 127.0.0.1:3000).
//     The API_SERVER environment variable overrides the file value.
//   - user_name: name shown in the dashboard greeting (default $USER).
//
// Missing config files are NOT an error; roverwatch works out of the box
// against a locally running proxy. Tilde expansion is performed on paths.
package config
