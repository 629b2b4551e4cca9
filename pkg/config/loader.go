package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/ddsbatch/pkg/errors"
	"github.com/arthur-debert/ddsbatch/pkg/logging"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment variables read into the config
const EnvPrefix = "DDSBATCH_"

// LoadOptions selects the optional layers of Load
type LoadOptions struct {
	// ConfigFile is an explicit config file; it must exist when set
	ConfigFile string

	// WorkDir is searched for a project config; defaults to the current directory
	WorkDir string

	// SkipUserConfig disables the XDG user config layer
	SkipUserConfig bool

	// Overrides are applied last, keyed by dotted config path
	Overrides map[string]interface{}
}

// Load merges all configuration layers and returns a validated Config
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config.loader")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}
	knownKeys := k.Keys()

	// 2-3. User and project config, both optional
	var candidates []string
	if !opts.SkipUserConfig {
		candidates = append(candidates, userConfigPaths()...)
	}
	workDir := opts.WorkDir
	if workDir == "" {
		workDir = "."
	}
	candidates = append(candidates,
		filepath.Join(workDir, ".ddsbatch.toml"),
		filepath.Join(workDir, ".ddsbatch.yaml"),
	)
	for _, path := range candidates {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := loadFile(k, path); err != nil {
			return nil, err
		}
		logger.Debug().Str("path", path).Msg("Loaded config file")
	}

	// 4. Explicit config file
	if opts.ConfigFile != "" {
		if _, err := os.Stat(opts.ConfigFile); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "config file %s", opts.ConfigFile)
		}
		if err := loadFile(k, opts.ConfigFile); err != nil {
			return nil, err
		}
		logger.Debug().Str("path", opts.ConfigFile).Msg("Loaded explicit config file")
	}

	// 5. Environment
	envKeys := make(map[string]string, len(knownKeys))
	for _, key := range knownKeys {
		envKeys[strings.ToUpper(strings.ReplaceAll(key, ".", "_"))] = key
	}
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return envKeys[strings.TrimPrefix(s, EnvPrefix)]
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	// 6. Flags
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	var cfg Config
	if err := Unmarshal(k, "", &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.Debug().
		Str("root", cfg.Root).
		Str("profile", cfg.Profile).
		Str("rulesFile", cfg.RulesFile).
		Int("workers", cfg.Workers).
		Dur("timeout", cfg.Timeout).
		Msg("Configuration loaded")

	return &cfg, nil
}

// Unmarshal decodes the koanf subtree at path into out, with the weak typing
// and hooks needed for values coming from env vars and YAML
func Unmarshal(k *koanf.Koanf, path string, out interface{}) error {
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           out,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf(path, out, unmarshalConf); err != nil {
		return errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}
	return nil
}

// ParserFor picks the koanf parser for a file by its extension
func ParserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return toml.Parser(), nil
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	default:
		return nil, errors.Newf(errors.ErrConfigLoad, "unsupported config format %q (use .toml or .yaml)", filepath.Ext(path)).
			WithDetail("path", path)
	}
}

// NewFromFile loads a single TOML or YAML file into a fresh koanf instance
func NewFromFile(path string) (*koanf.Koanf, error) {
	k := koanf.New(".")
	if err := loadFile(k, path); err != nil {
		return nil, err
	}
	return k, nil
}

// NewFromBytes loads raw TOML or YAML content; format is a file extension
// such as ".toml"
func NewFromBytes(content []byte, format string) (*koanf.Koanf, error) {
	parser, err := ParserFor("content" + format)
	if err != nil {
		return nil, err
	}
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: content}, parser); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to parse content")
	}
	return k, nil
}

func loadFile(k *koanf.Koanf, path string) error {
	parser, err := ParserFor(path)
	if err != nil {
		return err
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path)
	}
	return nil
}

// userConfigPaths returns the XDG user config candidates
func userConfigPaths() []string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		configHome = xdg.ConfigHome
	}
	if configHome == "" {
		return nil
	}
	dir := filepath.Join(configHome, "ddsbatch")
	return []string{
		filepath.Join(dir, "config.toml"),
		filepath.Join(dir, "config.yaml"),
	}
}
