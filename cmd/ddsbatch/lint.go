package ddsbatch

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/ddsbatch/pkg/rules"
	"github.com/arthur-debert/ddsbatch/pkg/style"
	"github.com/spf13/cobra"
)

// lintReport is the output of the lint command
type lintReport struct {
	RuleSet string        `json:"ruleSet" yaml:"rule_set"`
	Issues  []rules.Issue `json:"issues" yaml:"issues"`
}

func (r lintReport) Text() string {
	if len(r.Issues) == 0 {
		return fmt.Sprintf(MsgLintClean, r.RuleSet)
	}
	var b strings.Builder
	for _, issue := range r.Issues {
		b.WriteString(issue.String() + "\n")
	}
	return b.String()
}

func (r lintReport) Styled() string {
	if len(r.Issues) == 0 {
		return style.SuccessIndicator + " " + fmt.Sprintf(MsgLintClean, r.RuleSet)
	}
	var b strings.Builder
	for _, issue := range r.Issues {
		indicator := style.WarningStyle.Render("!")
		if issue.Severity == rules.SeverityError {
			indicator = style.ErrorIndicator
		}
		fmt.Fprintf(&b, "%s %s[%d] %s\n    %s\n", indicator, issue.Category, issue.Index,
			style.CodeStyle.Render(issue.Pattern), issue.Message)
	}
	return b.String()
}

func newLintCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "lint",
		Short: MsgLintShort,
		Long: `Lint checks the selected rule set (--profile or --rules) without compiling
it: invalid or overlong patterns, misplaced anchors, two patterns merged into
one entry, duplicates and bad scale factors. Exits non-zero on errors.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, f, nil)
			if err != nil {
				return err
			}

			var def rules.Definition
			if cfg.RulesFile != "" {
				def, err = rules.LoadDefinitionFile(cfg.RulesFile)
			} else {
				def, err = rules.LoadProfile(cfg.Profile)
			}
			if err != nil {
				return wrapf(MsgErrRules, err)
			}

			issues := rules.Lint(def, rules.LintOptions{MaxPatternLength: cfg.Lint.MaxPatternLength})
			out, _, err := newRenderer(cfg, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			if err := out.RenderValue(lintReport{RuleSet: def.Name, Issues: issues}); err != nil {
				return err
			}

			if rules.HasErrors(issues) {
				errCount := 0
				for _, issue := range issues {
					if issue.Severity == rules.SeverityError {
						errCount++
					}
				}
				return fmt.Errorf(MsgErrLint, def.Name, errCount)
			}
			return nil
		},
	}
}
