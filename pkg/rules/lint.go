package rules

import (
	"fmt"
	"regexp"
	"strings"
)

// DefaultMaxPatternLength is the longest pattern accepted by default
const DefaultMaxPatternLength = 120

// Severity of a lint issue
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Issue is a problem found in a rule definition
type Issue struct {
	Severity Severity
	Category Category
	Index    int
	Pattern  string
	Message  string
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %s[%d] %q: %s", i.Severity, i.Category, i.Index, i.Pattern, i.Message)
}

// LintOptions tunes the validation pass
type LintOptions struct {
	MaxPatternLength int
}

func (o LintOptions) maxLength() int {
	if o.MaxPatternLength <= 0 {
		return DefaultMaxPatternLength
	}
	return o.MaxPatternLength
}

// HasErrors reports whether any issue has error severity
func HasErrors(issues []Issue) bool {
	for _, issue := range issues {
		if issue.Severity == SeverityError {
			return true
		}
	}
	return false
}

// mergedExtension finds an escaped image extension followed by more text,
// e.g. `Props/.*\.pngSpace Factory Ind/`
var mergedExtension = regexp.MustCompile(`\\\.(?:png|jpg|jpeg|tga|mbm|dds)[^$)|]`)

// literalSegment is a plain directory name with no regex syntax
var literalSegment = regexp.MustCompile(`^[A-Za-z0-9 _-]+$`)

// Lint validates a definition without compiling it into a rule set. The
// definition is never modified: a merged pattern is reported, not split.
func Lint(def Definition, opts LintOptions) []Issue {
	var issues []Issue

	for _, list := range def.lists() {
		seen := make(map[string]int)
		for i, pattern := range list.patterns {
			issues = append(issues, lintPattern(list.category, i, pattern, opts)...)

			if first, dup := seen[pattern]; dup {
				issues = append(issues, Issue{
					Severity: SeverityWarning, Category: list.category, Index: i, Pattern: pattern,
					Message: fmt.Sprintf("duplicate of entry %d", first),
				})
			} else {
				seen[pattern] = i
			}
		}
		issues = append(issues, lintConcatenations(list)...)
	}

	for i, scale := range def.Scales {
		issues = append(issues, lintPattern(CategoryScale, i, scale.Pattern, opts)...)
		if scale.Model < 0 || scale.NormalMap < 0 {
			issues = append(issues, Issue{
				Severity: SeverityError, Category: CategoryScale, Index: i, Pattern: scale.Pattern,
				Message: "scale factors must not be negative",
			})
		}
		if scale.Model == 0 && scale.NormalMap == 0 {
			issues = append(issues, Issue{
				Severity: SeverityWarning, Category: CategoryScale, Index: i, Pattern: scale.Pattern,
				Message: "scale rule sets no factor and has no effect",
			})
		}
	}

	for i, suffix := range def.NormalMapSuffixes {
		if suffix == "" {
			issues = append(issues, Issue{
				Severity: SeverityError, Category: "normal_map_suffixes", Index: i,
				Message: "empty suffix would mark every model texture as a normal map",
			})
		}
	}

	return issues
}

func lintPattern(category Category, index int, pattern string, opts LintOptions) []Issue {
	issue := func(sev Severity, format string, args ...interface{}) Issue {
		return Issue{
			Severity: sev, Category: category, Index: index, Pattern: pattern,
			Message: fmt.Sprintf(format, args...),
		}
	}

	if strings.TrimSpace(pattern) == "" {
		return []Issue{issue(SeverityError, "empty pattern matches every path")}
	}
	if _, err := regexp.Compile(pattern); err != nil {
		return []Issue{issue(SeverityError, "invalid regular expression: %v", err)}
	}

	var issues []Issue
	if n := len(pattern); n > opts.maxLength() {
		issues = append(issues, issue(SeverityError,
			"pattern is %d characters long (limit %d); two rules may have been merged", n, opts.maxLength()))
	}

	carets, dollars, lastDollar := anchorTokens(pattern)
	for _, pos := range carets {
		if pos == 0 {
			issues = append(issues, issue(SeverityWarning, "leading '^' is redundant, patterns are anchored at the start"))
		} else {
			issues = append(issues, issue(SeverityError, "'^' at offset %d anchors a second pattern", pos))
		}
	}
	if len(dollars) > 1 {
		issues = append(issues, issue(SeverityError, "pattern contains %d end anchors", len(dollars)))
	} else if len(dollars) == 1 && !lastDollar {
		issues = append(issues, issue(SeverityError, "'$' at offset %d is followed by more pattern text", dollars[0]))
	}

	if loc := mergedExtension.FindStringIndex(pattern); loc != nil {
		issues = append(issues, issue(SeverityError,
			"file extension at offset %d is followed by more text; missing separator between two rules?", loc[0]))
	}

	segments := strings.Split(pattern, "/")
	if len(segments) >= 2 && literalSegment.MatchString(segments[0]) &&
		segments[1] != segments[0] && strings.HasPrefix(segments[1], segments[0]) {
		issues = append(issues, issue(SeverityWarning,
			"segment %q repeats %q; two rules may have been merged", segments[1], segments[0]))
	}

	return issues
}

// lintConcatenations flags patterns that are exactly two other patterns of
// the same list joined together
func lintConcatenations(list patternList) []Issue {
	var issues []Issue
	for i, pattern := range list.patterns {
		for j, head := range list.patterns {
			if j == i || head == "" || !strings.HasPrefix(pattern, head) {
				continue
			}
			tail := strings.TrimPrefix(pattern, head)
			for k, other := range list.patterns {
				if k != i && other != "" && other == tail {
					issues = append(issues, Issue{
						Severity: SeverityError, Category: list.category, Index: i, Pattern: pattern,
						Message: fmt.Sprintf("pattern is entries %d and %d joined together", j, k),
					})
				}
			}
		}
	}
	return issues
}

// anchorTokens returns the offsets of unescaped '^' and '$' outside
// character classes, and whether the only '$' is the final token
func anchorTokens(pattern string) (carets, dollars []int, lastDollar bool) {
	inClass := false
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		switch {
		case c == '\\':
			i++
		case inClass:
			if c == ']' {
				inClass = false
			}
		case c == '[':
			inClass = true
			// A leading ']' or '^]' is literal inside the class
			if i+1 < len(pattern) && pattern[i+1] == '^' {
				i++
			}
			if i+1 < len(pattern) && pattern[i+1] == ']' {
				i++
			}
		case c == '^':
			carets = append(carets, i)
		case c == '$':
			dollars = append(dollars, i)
		}
	}
	lastDollar = len(dollars) > 0 && dollars[len(dollars)-1] == len(pattern)-1
	return carets, dollars, lastDollar
}
