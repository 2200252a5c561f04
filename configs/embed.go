// Package configs provides the embedded configuration template for
// opldb.
//
// The template is embedded at build time with Go's //go:embed directive
// so it ships inside the binary itself, with no separate file to lose
// track of.
//
// Used by:
//   - cmd/opldb/cmd/config.go → `opldb config init` at
//     ~/.config/opldb/config.yaml
//
// Configuration hierarchy (see internal/config/config.go Load()):
//  1. Hardcoded defaults (internal/config/config.go NewConfig())
//  2. User config (~/.config/opldb/config.yaml)
//  3. Project config (.opldb.yaml)
//  4. Environment variables (OPLDB_*)
package configs

import _ "embed"

// UserConfigTemplate is the template written by `opldb config init` to
// the user's global configuration file.
//
//go:embed opldb-config.example.yaml
var UserConfigTemplate string
