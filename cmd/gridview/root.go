package main

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/young1lin/consolegrid/internal/source"
	"github.com/young1lin/consolegrid/internal/version"
	"github.com/young1lin/consolegrid/table"
)

func newRootCmd(deps *AppDependencies) *cobra.Command {
	a := &app{deps: deps}

	root := &cobra.Command{
		Use:   "gridview",
		Short: "Render tables in the console",
		Long: `gridview lays out tables with borders, spans, wrapping and nested grids.
Tables come from YAML, TOML or JSON documents, CSV files or SQLite queries.`,
		Version:       version.String(),
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}
	root.SetIn(deps.Stdin)
	root.SetOut(deps.Stdout)
	root.SetErr(deps.Stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&a.configDir, "config", "", "directory searched for .gridview.yaml (default: current directory)")
	pf.StringVarP(&a.border, "border", "b", "", "border preset (plusminus, single, double, none) or a 15/16 glyph template")
	pf.IntVar(&a.minWidth, "min-width", 0, "minimum total table width")
	pf.IntVar(&a.maxWidth, "max-width", 0, "maximum total table width (0 means unlimited)")
	pf.StringVar(&a.color, "color", "auto", "color output: auto, always or never")
	pf.StringVar(&a.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	pf.BoolVar(&a.debug, "debug", false, "shorthand for --log-level debug")

	root.AddCommand(
		newRenderCmd(a),
		newCSVCmd(a),
		newSQLCmd(a),
		newViewCmd(a),
		newVersionCmd(a),
	)
	return root
}

func newRenderCmd(a *app) *cobra.Command {
	var (
		format   string
		watching bool
	)

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a YAML, TOML or JSON table document",
		Long: `Render a table document. The format follows the file extension;
with no file (or "-") the document is read from stdin in --format.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			load := func() (*table.Grid, error) {
				g, err := a.loadDocument(path, format)
				if err != nil {
					return nil, err
				}
				return g, a.finish(cmd, g)
			}

			if watching {
				if path == "" || path == "-" {
					return fmt.Errorf("--watch needs a file")
				}
				return a.watchRender(cmd.Context(), path, load)
			}

			g, err := load()
			if err != nil {
				return err
			}
			return a.write(g)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "yaml", "stdin document format (yaml, toml, json)")
	cmd.Flags().BoolVarP(&watching, "watch", "w", false, "re-render whenever the file changes")
	return cmd
}

func newCSVCmd(a *app) *cobra.Command {
	var (
		header   bool
		comma    string
		comment  string
		watching bool
	)

	cmd := &cobra.Command{
		Use:   "csv [file]",
		Short: "Render a CSV file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}

			opts := source.CSVOptions{Header: header}
			var err error
			if opts.Comma, err = singleRune("comma", comma); err != nil {
				return err
			}
			if opts.Comment, err = singleRune("comment", comment); err != nil {
				return err
			}

			load := func() (*table.Grid, error) {
				g, err := a.loadCSV(path, opts)
				if err != nil {
					return nil, err
				}
				return g, a.finish(cmd, g)
			}

			if watching {
				if path == "" || path == "-" {
					return fmt.Errorf("--watch needs a file")
				}
				return a.watchRender(cmd.Context(), path, load)
			}

			g, err := load()
			if err != nil {
				return err
			}
			return a.write(g)
		},
	}

	cmd.Flags().BoolVar(&header, "header", true, "treat the first record as column headers")
	cmd.Flags().StringVar(&comma, "comma", ",", "field delimiter")
	cmd.Flags().StringVar(&comment, "comment", "", "comment line prefix")
	cmd.Flags().BoolVarP(&watching, "watch", "w", false, "re-render whenever the file changes")
	return cmd
}

// singleRune parses a one-character flag value; empty means unset
func singleRune(name, v string) (rune, error) {
	if v == "" {
		return 0, nil
	}
	if utf8.RuneCountInString(v) != 1 {
		return 0, fmt.Errorf("--%s must be a single character, got %q", name, v)
	}
	r, _ := utf8.DecodeRuneInString(v)
	return r, nil
}

func newSQLCmd(a *app) *cobra.Command {
	var (
		dbPath     string
		query      string
		importPath string
		tableName  string
	)

	cmd := &cobra.Command{
		Use:   "sql",
		Short: "Render the result of an SQLite query",
		Long: `Run a query against an SQLite database and render the result set.
--import loads a CSV file (with a header row) into --table first; without
--query the imported table is rendered.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			db, err := source.Open(dbPath, a.log)
			if err != nil {
				return err
			}
			defer db.Close()

			if importPath != "" {
				if tableName == "" {
					tableName = strings.TrimSuffix(filepath.Base(importPath), filepath.Ext(importPath))
				}
				recs, err := source.LoadCSV(importPath, source.CSVOptions{Header: true})
				if err != nil {
					return err
				}
				if err := db.Import(ctx, tableName, recs); err != nil {
					return err
				}
				if query == "" {
					query = "SELECT * FROM " + source.QuoteIdent(tableName)
				}
			}
			if query == "" {
				return fmt.Errorf("--query or --import is required")
			}

			g, err := db.QueryGrid(ctx, query)
			if err != nil {
				return err
			}
			if err := a.finish(cmd, g); err != nil {
				return err
			}
			return a.write(g)
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite database file")
	cmd.Flags().StringVarP(&query, "query", "q", "", "SQL query to render")
	cmd.Flags().StringVar(&importPath, "import", "", "CSV file to import before querying")
	cmd.Flags().StringVar(&tableName, "table", "", "table to import into (default: CSV file name)")
	_ = cmd.MarkFlagRequired("db")
	return cmd
}

func newViewCmd(a *app) *cobra.Command {
	var (
		noWatch bool
		noFit   bool
	)

	cmd := &cobra.Command{
		Use:   "view file",
		Short: "Browse a table document or CSV file interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runView(cmd, args[0], !noWatch, !noFit)
		},
	}

	cmd.Flags().BoolVar(&noWatch, "no-watch", false, "do not reload when the file changes")
	cmd.Flags().BoolVar(&noFit, "no-fit", false, "do not limit the table to the terminal width")
	return cmd
}

func newVersionCmd(a *app) *cobra.Command {
	var check bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "gridview %s\n", version.String())
			if !check {
				return nil
			}

			release, err := a.deps.NewChecker(a.log).Check(cmd.Context(), true)
			if err != nil {
				return err
			}
			if release == nil {
				fmt.Fprintln(out, "gridview is up to date")
				return nil
			}
			fmt.Fprintf(out, "Update available: %s → %s\nVisit %s to download\n",
				version.Version, release.TagName, release.HTMLURL)
			return nil
		},
	}

	cmd.Flags().BoolVar(&check, "check", false, "check GitHub for a newer release")
	return cmd
}
