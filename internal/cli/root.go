// Package cli implements the arenagen command line tool.
package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to flag names for env overrides, e.g. ARENAGEN_TEAMS.
const EnvPrefix = "ARENAGEN"

// NewRootCommand builds the arenagen command tree around its own viper
// instance so flags, env vars and the config file never leak between runs.
func NewRootCommand() *cobra.Command {
	v := viper.New()

	root := &cobra.Command{
		Use:   "arenagen",
		Short: "Seeded arena layout generator",
		Long: `arenagen places obstacles and teams of players in a rectangular arena
so that no player overlaps another player or an obstacle. The same seed and
options always give the same layout.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return initConfig(v)
		},
	}

	root.PersistentFlags().StringP("config", "c", "", "config file (yaml, json or toml)")
	_ = v.BindPFlag("config", root.PersistentFlags().Lookup("config"))

	root.AddCommand(newGenerateCommand(v))
	return root
}

func initConfig(v *viper.Viper) error {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if cfgFile := v.GetString("config"); cfgFile != "" {
		v.SetConfigFile(cfgFile)
		return v.ReadInConfig()
	}
	return nil
}

// Execute runs arenagen with os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}
