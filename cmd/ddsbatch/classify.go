package ddsbatch

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/ddsbatch/pkg/encoder"
	"github.com/arthur-debert/ddsbatch/pkg/rules"
	"github.com/arthur-debert/ddsbatch/pkg/style"
	"github.com/spf13/cobra"
)

// classified is one row of the classify command
type classified struct {
	Path           string   `json:"path" yaml:"path"`
	Excluded       bool     `json:"excluded" yaml:"excluded"`
	IsModel        bool     `json:"isModel" yaml:"is_model"`
	IsNormalMap    bool     `json:"isNormalMap" yaml:"is_normal_map"`
	KeepReadable   bool     `json:"keepReadable" yaml:"keep_readable"`
	EncoderArgs    []string `json:"encoderArgs,omitempty" yaml:"encoder_args,omitempty"`
	MatchedRules   []string `json:"matchedRules,omitempty" yaml:"matched_rules,omitempty"`
	classification rules.Classification
}

type classifyReport []classified

func (r classifyReport) Text() string {
	var b strings.Builder
	for _, c := range r {
		fmt.Fprintf(&b, "%s: %s", c.Path, style.Kind(c.classification))
		if len(c.EncoderArgs) > 0 {
			fmt.Fprintf(&b, " [%s]", strings.Join(c.EncoderArgs, " "))
		}
		b.WriteString("\n")
		for _, m := range c.MatchedRules {
			fmt.Fprintf(&b, "    %s\n", m)
		}
	}
	return b.String()
}

func (r classifyReport) Styled() string {
	var b strings.Builder
	for _, c := range r {
		fmt.Fprintf(&b, "%s  %s", style.PathStyle.Render(c.Path), style.StyledKind(c.classification))
		if len(c.EncoderArgs) > 0 {
			b.WriteString("  " + style.CodeStyle.Render(strings.Join(c.EncoderArgs, " ")))
		}
		b.WriteString("\n")
		for _, m := range c.MatchedRules {
			b.WriteString("    " + style.MutedStyle.Render(m) + "\n")
		}
	}
	return b.String()
}

// classifyPaths classifies texture paths and derives their encoder
// arguments, with the path itself standing in for the file
func classifyPaths(rs *rules.RuleSet, scales encoder.Scales, paths []string) classifyReport {
	report := make(classifyReport, 0, len(paths))
	for _, p := range paths {
		tp := rules.TexturePath(strings.ReplaceAll(p, `\`, "/"))
		c := rs.Classify(tp)

		row := classified{
			Path:           string(tp),
			Excluded:       c.Excluded,
			IsModel:        c.IsModel,
			IsNormalMap:    c.IsNormalMap,
			KeepReadable:   c.KeepReadable,
			classification: c,
		}
		if !c.Excluded {
			row.EncoderArgs = encoder.Build(c, string(tp), scales).Args()
		}
		for _, r := range rs.Explain(tp) {
			row.MatchedRules = append(row.MatchedRules, fmt.Sprintf("%s[%d] %s", r.Category, r.Index, r.Pattern))
		}
		report = append(report, row)
	}
	return report
}

func newClassifyCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "classify PATH...",
		Short: MsgClassifyShort,
		Long: `Classify prints, for each texture path (relative to the asset root, e.g.
Squad/Parts/Engine/engine.png), whether it is excluded, a model texture, a
normal map or kept readable, the encoder arguments it would get and the
rules that matched. No file is read or changed.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, f, nil)
			if err != nil {
				return err
			}
			rs, err := loadRules(cfg)
			if err != nil {
				return err
			}
			out, _, err := newRenderer(cfg, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			scales := encoder.Scales{Model: cfg.Scale.Model, NormalMap: cfg.Scale.NormalMap}
			return out.RenderValue(classifyPaths(rs, scales, args))
		},
	}
}
