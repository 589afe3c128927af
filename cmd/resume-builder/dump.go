package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"resume-builder/internal/model"
)

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the stored resume as JSON or YAML",
	RunE: func(cmd *cobra.Command, args []string) error {
		formatName, _ := cmd.Flags().GetString("format")
		f, err := model.ParseFormat(formatName)
		if err != nil {
			return err
		}

		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer a.close()

		b, err := model.EncodeAs(a.editor.Snapshot(), f)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(b)
		return err
	},
}

var loadCmd = &cobra.Command{
	Use:   "load FILE",
	Short: "Replace the stored resume with a JSON or YAML file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		f := model.FormatFromPath(path)
		if name, _ := cmd.Flags().GetString("format"); name != "" {
			var err error
			if f, err = model.ParseFormat(name); err != nil {
				return err
			}
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		doc, err := model.DecodeAs(data, f)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer a.close()

		if _, err := a.editor.Replace(cmd.Context(), doc); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "loaded %s (%d experience, %d education, %d skills)\n",
			path, len(doc.Experience), len(doc.Education), len(doc.Skills))
		return nil
	},
}

func init() {
	dumpCmd.Flags().String("format", "json", "output format: json or yaml")
	loadCmd.Flags().String("format", "", "input format: json or yaml (default: from file extension)")
	rootCmd.AddCommand(dumpCmd)
	rootCmd.AddCommand(loadCmd)
}
