package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/windmaze/internal/config"
)

func newConfigCmd(a *app) *cobra.Command {
	var showDefault bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Print the configuration windmaze would use, as YAML.
With --default the embedded default file is printed instead, which is a
good starting point for ~/.windmaze/config.yaml.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if showDefault {
				_, err := out.Write(config.DefaultYAML())
				return err
			}

			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}
			data, err := config.Marshal(cfg)
			if err != nil {
				return err
			}
			if _, err := out.Write(data); err != nil {
				return err
			}
			a.logger(cmd, cfg).Debug("config source", "path", cfg.Source)
			return nil
		},
	}

	cmd.Flags().BoolVar(&showDefault, "default", false, "Print the embedded default configuration")
	return cmd
}
