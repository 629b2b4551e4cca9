package rules

import "regexp"

// TexturePath is a file path relative to the asset root, always using
// forward slashes
type TexturePath string

// Category names one of the rule lists
type Category string

const (
	CategoryExclude      Category = "exclude"
	CategoryModel        Category = "model"
	CategoryNotModel     Category = "not_model"
	CategoryKeepReadable Category = "keep_readable"
	CategoryScale        Category = "scale"
)

// DefaultNormalMapSuffixes are the file name endings (before the
// extension) that mark a model texture as a normal map
var DefaultNormalMapSuffixes = []string{"NRM", "_nm", "_normal"}

// Rule is a single compiled pattern
type Rule struct {
	Category Category
	Index    int
	Pattern  string
	re       *regexp.Regexp
}

// Match reports whether the rule matches the start of path
func (r Rule) Match(path TexturePath) bool {
	return r.re.MatchString(string(path))
}

// ScaleRule overrides the global scale factors for matching textures.
// A zero factor means the global factor applies.
type ScaleRule struct {
	Rule
	Model     float64
	NormalMap float64
}

// RuleSet is an immutable, compiled rule set. It is safe for concurrent use.
type RuleSet struct {
	Name              string
	Exclude           []Rule
	Model             []Rule
	NotModel          []Rule
	KeepReadable      []Rule
	Scales            []ScaleRule
	NormalMapSuffixes []string
}

// Classification is the conversion policy derived for one texture path
type Classification struct {
	Path         TexturePath
	Excluded     bool
	IsModel      bool
	IsNormalMap  bool
	KeepReadable bool

	// Per-rule overrides, zero when no scale rule matched
	ModelScale     float64
	NormalMapScale float64
}

// Definition is the uncompiled, structured form of a rule set
type Definition struct {
	Name              string            `koanf:"name" toml:"name,omitempty"`
	NormalMapSuffixes []string          `koanf:"normal_map_suffixes" toml:"normal_map_suffixes,omitempty"`
	Exclude           []string          `koanf:"exclude" toml:"exclude"`
	Model             []string          `koanf:"model" toml:"model"`
	NotModel          []string          `koanf:"not_model" toml:"not_model"`
	KeepReadable      []string          `koanf:"keep_readable" toml:"keep_readable"`
	Scales            []ScaleDefinition `koanf:"scale" toml:"scale,omitempty"`
}

// ScaleDefinition is the uncompiled form of a ScaleRule
type ScaleDefinition struct {
	Pattern   string  `koanf:"pattern" toml:"pattern"`
	Model     float64 `koanf:"model" toml:"model,omitempty"`
	NormalMap float64 `koanf:"normal_map" toml:"normal_map,omitempty"`
}

type patternList struct {
	category Category
	patterns []string
}

// lists returns the four pattern lists in evaluation order
func (d Definition) lists() []patternList {
	return []patternList{
		{CategoryExclude, d.Exclude},
		{CategoryModel, d.Model},
		{CategoryNotModel, d.NotModel},
		{CategoryKeepReadable, d.KeepReadable},
	}
}
