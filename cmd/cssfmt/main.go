// Command cssfmt parses CSS and prints it back in a canonical form.
package main

import (
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
	"spilled.ink/cssparser/html/css"
)

var version = "unknown" // filled in by "-ldflags=-X main.version=<val>"

func main() {
	log.SetFlags(0)

	rootCmd := &cobra.Command{
		Use:          "cssfmt",
		Short:        "Parse, reformat and inspect CSS",
		Version:      version,
		SilenceUsage: true,
	}
	rootCmd.AddCommand(newFmtCmd())
	rootCmd.AddCommand(newURLsCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

type parseFlags struct {
	charset string
	verbose bool
}

func (f *parseFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.charset, "charset", css.DefaultCharset, "charset of the input until an @charset rule")
	cmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "log parser diagnostics to stderr")
}

func (f *parseFlags) options() []css.Option {
	opts := []css.Option{css.WithCharset(f.charset)}
	if f.verbose {
		opts = append(opts, css.WithLogf(log.Printf))
	}
	return opts
}

// readInput reads the named file, or stdin when args is empty.
func readInput(args []string) (name string, src []byte, err error) {
	if len(args) == 0 {
		src, err = io.ReadAll(os.Stdin)
		return "<stdin>", src, err
	}
	src, err = os.ReadFile(args[0])
	return args[0], src, err
}
