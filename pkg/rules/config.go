package rules

import (
	"embed"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/ddsbatch/pkg/config"
	"github.com/arthur-debert/ddsbatch/pkg/errors"
	"github.com/arthur-debert/ddsbatch/pkg/logging"
	"github.com/knadh/koanf/v2"
)

//go:embed profiles/*.toml
var profileFS embed.FS

// ProfileNames lists the embedded rule profiles
func ProfileNames() []string {
	entries, err := profileFS.ReadDir("profiles")
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), path.Ext(e.Name())))
	}
	sort.Strings(names)
	return names
}

// ProfileContent returns the raw TOML of an embedded profile
func ProfileContent(name string) ([]byte, error) {
	content, err := profileFS.ReadFile("profiles/" + name + ".toml")
	if err != nil {
		return nil, errors.Newf(errors.ErrProfileNotFound, "unknown rule profile %q (available: %s)",
			name, strings.Join(ProfileNames(), ", "))
	}
	return content, nil
}

// LoadProfile reads an embedded profile definition
func LoadProfile(name string) (Definition, error) {
	content, err := ProfileContent(name)
	if err != nil {
		return Definition{}, err
	}
	k, err := config.NewFromBytes(content, ".toml")
	if err != nil {
		return Definition{}, err
	}
	return decode(k, name)
}

// LoadDefinitionFile reads a TOML or YAML rules file
func LoadDefinitionFile(file string) (Definition, error) {
	k, err := config.NewFromFile(file)
	if err != nil {
		return Definition{}, err
	}
	return decode(k, strings.TrimSuffix(filepath.Base(file), filepath.Ext(file)))
}

// Load resolves a rules file if given, otherwise an embedded profile, and
// compiles it
func Load(profile, rulesFile string, opts LintOptions) (*RuleSet, error) {
	logger := logging.GetLogger("rules.config")

	var def Definition
	var err error
	if rulesFile != "" {
		logger.Info().Str("file", rulesFile).Msg("Loading rules file")
		def, err = LoadDefinitionFile(rulesFile)
	} else {
		logger.Info().Str("profile", profile).Msg("Loading rule profile")
		def, err = LoadProfile(profile)
	}
	if err != nil {
		return nil, err
	}
	return Compile(def, opts)
}

func decode(k *koanf.Koanf, fallbackName string) (Definition, error) {
	var def Definition
	if err := config.Unmarshal(k, "", &def); err != nil {
		return Definition{}, err
	}
	if def.Name == "" {
		def.Name = fallbackName
	}
	return def, nil
}
