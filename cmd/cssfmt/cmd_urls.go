package main

import (
	"bytes"
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"spilled.ink/cssparser/html/css"
	"spilled.ink/cssparser/html/htmlcss"
)

func newURLsCmd() *cobra.Command {
	var (
		flags parseFlags
		html  bool
	)

	cmd := &cobra.Command{
		Use:   "urls [file]",
		Short: "List the locations a style sheet or HTML document references",
		Long: `Print every distinct url() and @import location, one per line.

Files ending in .html or .htm are read as HTML, and the CSS of their
<style> elements and style attributes is searched. Use --html to read
stdin as HTML.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, src, err := readInput(args)
			if err != nil {
				return fmt.Errorf("read: %w", err)
			}
			switch strings.ToLower(filepath.Ext(name)) {
			case ".html", ".htm":
				html = true
			}

			var urls []string
			if html {
				opts := &htmlcss.Options{Charset: flags.charset}
				if flags.verbose {
					opts.Logf = log.Printf
				}
				s, err := htmlcss.Extract(bytes.NewReader(src), opts)
				if err != nil {
					return fmt.Errorf("%s: %w", name, err)
				}
				urls = s.URLs()
			} else {
				doc, err := css.Parse(src, flags.options()...)
				if err != nil {
					return fmt.Errorf("%s: %w", name, err)
				}
				for _, v := range css.AllValues(doc) {
					if u, ok := v.(*css.URL); ok {
						urls = append(urls, u.Location.Value)
					}
				}
			}
			seen := make(map[string]bool)
			for _, u := range urls {
				if seen[u] {
					continue
				}
				seen[u] = true
				fmt.Fprintln(cmd.OutOrStdout(), u)
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&html, "html", false, "read the input as HTML")

	return cmd
}
