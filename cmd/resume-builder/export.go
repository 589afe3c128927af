package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the stored resume to PDF and wait for the result",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer a.close()

		x, err := a.editor.Export(cmd.Context())
		if err != nil {
			return err
		}
		res, err := x.Wait(cmd.Context())
		if err != nil {
			return err
		}
		if res.Err != nil {
			return fmt.Errorf("export %s: %w", res.Job.ID, res.Err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), res.Path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
}
