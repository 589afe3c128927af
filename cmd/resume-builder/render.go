package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Write the HTML preview of the stored resume",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer a.close()

		html, err := a.editor.PreviewHTML()
		if err != nil {
			return err
		}

		out, _ := cmd.Flags().GetString("out")
		if out == "" || out == "-" {
			_, err = fmt.Fprint(cmd.OutOrStdout(), html)
			return err
		}
		if err := os.WriteFile(out, []byte(html), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", out, err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", out)
		return nil
	},
}

func init() {
	renderCmd.Flags().StringP("out", "o", "", "output file (default: stdout)")
	rootCmd.AddCommand(renderCmd)
}
