// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/spinmix/internal/report"
	"github.com/katalvlaran/spinmix/model"
)

func (a *app) newModelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List the available models and their default ranges",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return report.WriteModels(a.stdout, model.All(), styled(a.stdout))
		},
	}
}

func (a *app) newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Long: `Prints the built-in defaults, or the --config file merged over them, in the
format accepted by --config.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := a.loadConfig(cmd)
			if err != nil {
				return err
			}
			data, err := cfg.Marshal()
			if err != nil {
				return err
			}
			_, err = a.stdout.Write(data)
			return err
		},
	}
}
