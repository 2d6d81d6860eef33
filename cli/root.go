package cli

import (
	"github.com/MakeNowJust/heredoc"
	"github.com/goto/salt/cmdx"
	"github.com/spf13/cobra"
)

// New returns the root command for the ews binary.
func New(cfg *Config) *cobra.Command {
	var rootCmd = &cobra.Command{
		Use:           "ews <command> <subcommand> [flags]",
		Short:         "Exchange-style web services search toolkit",
		Long:          "Build, validate and render search request bodies for Exchange-style web services.",
		SilenceErrors: true,
		SilenceUsage:  false,
		Example: heredoc.Doc(`
		$ ews render --kind item --page-size 50
		$ ews render --kind calendar --start 2026-08-01T00:00:00Z --end 2026-09-01T00:00:00Z
		$ ews config init
		`),
		Annotations: map[string]string{
			"group": "core",
			"help:learn": heredoc.Doc(`
				Use 'ews <command> --help' for info about a command.
			`),
		},
	}

	rootCmd.AddCommand(
		renderCommand(cfg),
		configCommand(cfg),
		versionCmd(),
	)

	// Help topics
	rootCmd.AddCommand(cmdx.SetCompletionCmd("ews"))
	rootCmd.AddCommand(cmdx.SetRefCmd(rootCmd))
	cmdx.SetHelp(rootCmd)

	rootCmd.PersistentFlags().StringP(configFlag, "c", "", "Override config file")

	return rootCmd
}
