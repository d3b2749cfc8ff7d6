package main

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newConfigCmd(root *rootFlags) *cobra.Command {
	var write string

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective settings, or write them to a file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := root.settings()
			if err != nil {
				return err
			}
			if write != "" {
				return settings.Save(write)
			}
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(settings); err != nil {
				return err
			}
			return enc.Close()
		},
	}

	cmd.Flags().StringVar(&write, "write", "", "Save the settings to this path (.json, .yaml or .yml)")
	return cmd
}
