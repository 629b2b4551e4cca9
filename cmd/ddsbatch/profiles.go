package ddsbatch

import (
	"strings"

	"github.com/arthur-debert/ddsbatch/pkg/rules"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
)

type profileList []string

func (p profileList) Text() string {
	return strings.Join(p, "\n")
}

func newProfilesCmd(f *flags) *cobra.Command {
	var show string

	cmd := &cobra.Command{
		Use:   "profiles",
		Short: MsgProfilesShort,
		Long: `Profiles lists the rule profiles built into ddsbatch. With --show NAME the
profile is printed as TOML, ready to be saved and edited as a rules file:

  ddsbatch profiles --show default > myrules.toml
  ddsbatch --rules myrules.toml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if show != "" {
				def, err := rules.LoadProfile(show)
				if err != nil {
					return err
				}
				data, err := toml.Marshal(def)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}

			cfg, err := loadConfig(cmd, f, nil)
			if err != nil {
				return err
			}
			out, _, err := newRenderer(cfg, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return out.RenderValue(profileList(rules.ProfileNames()))
		},
	}
	cmd.Flags().StringVar(&show, "show", "", MsgFlagShow)
	return cmd
}
