package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/MakeNowJust/heredoc"
	"github.com/goto/salt/cmdx"
	"github.com/goto/salt/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"
)

const configFlag = "config"

// Config holds the client configuration for the ews binary.
type Config struct {
	// Log
	LogLevel string `yaml:"log_level" mapstructure:"log_level" default:"info"`

	// Protocol version request bodies target by default
	ProtocolVersion string `yaml:"protocol_version" mapstructure:"protocol_version" default:"Exchange2013_SP1"`
}

func LoadConfig() (*Config, error) {
	var cfg Config
	err := cmdx.SetConfig("ews").Load(&cfg)
	if err != nil {
		if errors.As(err, &config.ConfigFileNotFoundError{}) {
			return LoadFromCurrentDir()
		}
		return &cfg, err
	}
	return &cfg, nil
}

func LoadFromCurrentDir() (*Config, error) {
	var cfg Config
	var opts []config.LoaderOption

	opts = append(opts,
		config.WithPath("./"),
		config.WithName("ews.yaml"),
		config.WithEnvKeyReplacer(".", "_"),
		config.WithEnvPrefix("EWS"),
	)

	if err := config.NewLoader(opts...).Load(&cfg); err != nil {
		return &cfg, err
	}
	return &cfg, nil
}

func configCommand(cfg *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config <command>",
		Short: "Manage client configurations",
		Example: heredoc.Doc(`
			$ ews config init
			$ ews config list`),
	}

	cmd.AddCommand(configInitCommand())
	cmd.AddCommand(configListCommand(cfg))

	return cmd
}

func configInitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize a new client configuration",
		Example: heredoc.Doc(`
			$ ews config init
		`),
		Annotations: map[string]string{
			"group": "core",
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := cmdx.SetConfig("ews")

			if err := cfg.Init(&Config{}); err != nil {
				return err
			}

			fmt.Printf("config created: %v\n", cfg.File())
			return nil
		},
	}
}

func configListCommand(cfg *Config) *cobra.Command {
	var cmd = &cobra.Command{
		Use:   "list",
		Short: "List client configuration settings",
		Example: heredoc.Doc(`
			$ ews config list
		`),
		Annotations: map[string]string{
			"group": "core",
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = yaml.NewEncoder(os.Stdout).Encode(*cfg)
			return nil
		},
	}
	return cmd
}
