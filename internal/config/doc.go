// Package config provides configuration management for the serpmaster CLI.
//
// Configuration comes from three sources, in increasing precedence:
//   - built-in defaults (NewConfig)
//   - the environment (SERPMASTER_API_URL, SERPMASTER_API_KEY; a local
//     .env file is loaded first if present)
//   - CLI flags, applied by the command layer
//
// A YAML project file (.serpmaster) additionally carries per-site settings
// such as authentication headers and poll interval overrides.
package config
