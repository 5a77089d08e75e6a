package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"spilled.ink/cssparser/html/css"
)

func newFmtCmd() *cobra.Command {
	var (
		flags     parseFlags
		overwrite bool
	)

	cmd := &cobra.Command{
		Use:   "fmt [file]",
		Short: "Reformat a style sheet",
		Long: `Parse a style sheet and print it with one top-level item per line.

If no file is provided, reads CSS from stdin.
Use -w to overwrite the file in place (requires a file argument).
The output is always UTF-8; an @charset rule in the input is kept.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if overwrite && len(args) == 0 {
				return fmt.Errorf("-w requires a file argument")
			}
			name, src, err := readInput(args)
			if err != nil {
				return fmt.Errorf("read: %w", err)
			}
			doc, err := css.Parse(src, flags.options()...)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			var buf bytes.Buffer
			if err := css.Format(&buf, doc); err != nil {
				return err
			}
			if overwrite {
				return os.WriteFile(name, buf.Bytes(), 0644)
			}
			_, err = cmd.OutOrStdout().Write(buf.Bytes())
			return err
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVarP(&overwrite, "write", "w", false, "overwrite the file in place")

	return cmd
}
