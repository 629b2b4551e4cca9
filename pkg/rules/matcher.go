package rules

import (
	"path"
	"regexp"
	"strings"

	"github.com/arthur-debert/ddsbatch/pkg/errors"
	"github.com/arthur-debert/ddsbatch/pkg/logging"
)

// Compile lints a definition and compiles it into an immutable rule set.
// Any lint issue with error severity rejects the whole definition.
func Compile(def Definition, opts LintOptions) (*RuleSet, error) {
	logger := logging.GetLogger("rules.compile")

	issues := Lint(def, opts)
	for _, issue := range issues {
		if issue.Severity == SeverityWarning {
			logger.Warn().
				Str("ruleSet", def.Name).
				Str("category", string(issue.Category)).
				Int("index", issue.Index).
				Str("pattern", issue.Pattern).
				Msg(issue.Message)
		}
	}
	if HasErrors(issues) {
		var msgs []string
		for _, issue := range issues {
			if issue.Severity == SeverityError {
				msgs = append(msgs, issue.String())
			}
		}
		return nil, errors.Newf(errors.ErrRuleInvalid, "rule set %q is invalid:\n  %s",
			def.Name, strings.Join(msgs, "\n  ")).
			WithDetail("issues", issues)
	}

	rs := &RuleSet{
		Name:              def.Name,
		NormalMapSuffixes: append([]string(nil), def.NormalMapSuffixes...),
	}
	if len(rs.NormalMapSuffixes) == 0 {
		rs.NormalMapSuffixes = append([]string(nil), DefaultNormalMapSuffixes...)
	}

	var err error
	if rs.Exclude, err = compileList(CategoryExclude, def.Exclude); err != nil {
		return nil, err
	}
	if rs.Model, err = compileList(CategoryModel, def.Model); err != nil {
		return nil, err
	}
	if rs.NotModel, err = compileList(CategoryNotModel, def.NotModel); err != nil {
		return nil, err
	}
	if rs.KeepReadable, err = compileList(CategoryKeepReadable, def.KeepReadable); err != nil {
		return nil, err
	}
	for i, s := range def.Scales {
		rule, err := compileRule(CategoryScale, i, s.Pattern)
		if err != nil {
			return nil, err
		}
		rs.Scales = append(rs.Scales, ScaleRule{Rule: rule, Model: s.Model, NormalMap: s.NormalMap})
	}

	logger.Debug().
		Str("ruleSet", rs.Name).
		Int("exclude", len(rs.Exclude)).
		Int("model", len(rs.Model)).
		Int("notModel", len(rs.NotModel)).
		Int("keepReadable", len(rs.KeepReadable)).
		Int("scale", len(rs.Scales)).
		Msg("Compiled rule set")

	return rs, nil
}

// MustCompile is like Compile but panics on error. Intended for tests and
// static tables.
func MustCompile(def Definition) *RuleSet {
	rs, err := Compile(def, LintOptions{})
	if err != nil {
		panic(err)
	}
	return rs
}

func compileList(category Category, patterns []string) ([]Rule, error) {
	compiled := make([]Rule, 0, len(patterns))
	for i, p := range patterns {
		rule, err := compileRule(category, i, p)
		if err != nil {
			return nil, err
		}
		compiled = append(compiled, rule)
	}
	return compiled, nil
}

// compileRule anchors the pattern at the start of the path only
func compileRule(category Category, index int, pattern string) (Rule, error) {
	re, err := regexp.Compile(`^(?:` + pattern + `)`)
	if err != nil {
		return Rule{}, errors.Wrapf(err, errors.ErrRuleInvalid, "%s[%d] %q", category, index, pattern)
	}
	return Rule{Category: category, Index: index, Pattern: pattern, re: re}, nil
}

func matchAny(rules []Rule, p TexturePath) bool {
	for _, r := range rules {
		if r.Match(p) {
			return true
		}
	}
	return false
}

// IsNormalMapName reports whether the file name of p, without extension,
// ends with one of the normal map suffixes
func (rs *RuleSet) IsNormalMapName(p TexturePath) bool {
	base := path.Base(string(p))
	stem := strings.TrimSuffix(base, path.Ext(base))
	for _, suffix := range rs.NormalMapSuffixes {
		if suffix != "" && strings.HasSuffix(stem, suffix) {
			return true
		}
	}
	return false
}
