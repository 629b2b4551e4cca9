// Package config handles configuration management for ddsbatch.
//
// Configuration is layered with koanf, later layers overriding earlier ones:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. user config ($XDG_CONFIG_HOME/ddsbatch/config.toml or config.yaml)
//  3. project config (.ddsbatch.toml or .ddsbatch.yaml in the working directory)
//  4. an explicit --config file
//  5. DDSBATCH_* environment variables (DDSBATCH_ENCODER_PATH -> encoder.path)
//  6. command line flags
//
// TOML and YAML files are accepted everywhere; the parser is chosen by the
// file extension.
package config
