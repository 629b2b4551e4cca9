// Package ddsbatch implements the ddsbatch command line.
package ddsbatch

import (
	"io"
	"io/fs"

	"github.com/arthur-debert/ddsbatch/internal/version"
	"github.com/arthur-debert/ddsbatch/pkg/cobrax/topics"
	"github.com/arthur-debert/ddsbatch/pkg/config"
	"github.com/arthur-debert/ddsbatch/pkg/logging"
	"github.com/arthur-debert/ddsbatch/pkg/rules"
	"github.com/arthur-debert/ddsbatch/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// flags holds every command line flag; only flags set explicitly override
// the configuration
type flags struct {
	verbosity   int
	configFile  string
	format      string
	profile     string
	rulesFile   string
	modelScale  float64
	normalScale float64

	anchor      string
	workers     int
	timeout     string
	encoderPath string
	dryRun      bool
	noPrompt    bool
}

// overrideKeys maps flag names to config keys
var overrideKeys = map[string]string{
	"format":       "output.format",
	"profile":      "profile",
	"rules":        "rules_file",
	"model-scale":  "scale.model",
	"normal-scale": "scale.normal_map",
	"anchor":       "anchor",
	"workers":      "workers",
	"timeout":      "timeout",
	"encoder":      "encoder.path",
	"dry-run":      "dry_run",
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	f := &flags{}

	rootCmd := &cobra.Command{
		Use:     "ddsbatch [root]",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		Args:    cobra.MaximumNArgs(1),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(f.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(cmd, f, args)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.CountVarP(&f.verbosity, "verbose", "v", MsgFlagVerbose)
	pf.StringVarP(&f.configFile, "config", "c", "", MsgFlagConfig)
	pf.StringVar(&f.format, "format", "auto", MsgFlagFormat)
	pf.StringVarP(&f.profile, "profile", "p", "", MsgFlagProfile)
	pf.StringVarP(&f.rulesFile, "rules", "r", "", MsgFlagRules)
	pf.Float64Var(&f.modelScale, "model-scale", 1, MsgFlagModelScale)
	pf.Float64Var(&f.normalScale, "normal-scale", 1, MsgFlagNormalScale)

	lf := rootCmd.Flags()
	lf.StringVar(&f.anchor, "anchor", "", MsgFlagAnchor)
	lf.IntVarP(&f.workers, "workers", "j", 0, MsgFlagWorkers)
	lf.StringVar(&f.timeout, "timeout", "", MsgFlagTimeout)
	lf.StringVar(&f.encoderPath, "encoder", "", MsgFlagEncoder)
	lf.BoolVarP(&f.dryRun, "dry-run", "n", false, MsgFlagDryRun)
	lf.BoolVar(&f.noPrompt, "no-prompt", false, MsgFlagNoPrompt)

	rootCmd.AddCommand(newLintCmd(f))
	rootCmd.AddCommand(newClassifyCmd(f))
	rootCmd.AddCommand(newProfilesCmd(f))
	rootCmd.AddCommand(newVersionCmd())

	if source, err := fs.Sub(topicFiles, "topics"); err == nil {
		_, _ = topics.Initialize(rootCmd, source, topics.Options{
			Renderer: topics.NewGlamourRenderer(),
		})
	}

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := io.WriteString(cmd.OutOrStdout(), version.String("ddsbatch"))
			return err
		},
	}
}

// loadConfig merges the config layers with the flags that were set and the
// optional root argument
func loadConfig(cmd *cobra.Command, f *flags, args []string) (*config.Config, error) {
	overrides := make(map[string]interface{})
	cmd.Flags().VisitAll(func(fl *pflag.Flag) {
		key, ok := overrideKeys[fl.Name]
		if !ok || !fl.Changed {
			return
		}
		overrides[key] = fl.Value.String()
	})
	if fl := cmd.Flags().Lookup("no-prompt"); fl != nil && fl.Changed && f.noPrompt {
		overrides["output.prompt"] = false
	}
	if len(args) > 0 {
		overrides["root"] = args[0]
	}

	cfg, err := config.Load(config.LoadOptions{
		ConfigFile: f.configFile,
		Overrides:  overrides,
	})
	if err != nil {
		return nil, wrapf(MsgErrConfig, err)
	}
	return cfg, nil
}

func loadRules(cfg *config.Config) (*rules.RuleSet, error) {
	rs, err := rules.Load(cfg.Profile, cfg.RulesFile, rules.LintOptions{
		MaxPatternLength: cfg.Lint.MaxPatternLength,
	})
	if err != nil {
		return nil, wrapf(MsgErrRules, err)
	}
	return rs, nil
}

func newRenderer(cfg *config.Config, w io.Writer) (ui.Renderer, ui.Format, error) {
	format, err := ui.ParseFormat(cfg.Output.Format)
	if err != nil {
		return nil, format, wrapf(MsgErrFormat, err)
	}
	r, err := ui.NewRenderer(format, w)
	return r, format, err
}
