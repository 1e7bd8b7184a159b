package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/young1lin/consolegrid/display"
	"github.com/young1lin/consolegrid/internal/config"
	"github.com/young1lin/consolegrid/internal/document"
	"github.com/young1lin/consolegrid/internal/source"
	"github.com/young1lin/consolegrid/internal/version"
	"github.com/young1lin/consolegrid/internal/watch"
	"github.com/young1lin/consolegrid/table"
	"github.com/young1lin/consolegrid/tui"
)

// ProgramSender is an interface for sending messages to a Bubbletea program
type ProgramSender interface {
	Send(msg tea.Msg)
}

// AppDependencies contains the dependencies for the main application
type AppDependencies struct {
	Stdin          io.Reader
	Stdout         io.Writer
	Stderr         io.Writer
	Getwd          func() (string, error)
	LoadConfig     func(dir string) (*config.Config, error)
	WatcherCreator func(paths []string, log logrus.FieldLogger) (watch.Source, error)
	ProgramRunner  func(*tea.Program) error
	NewChecker     func(log logrus.FieldLogger) *version.Checker
}

func defaultDeps() *AppDependencies {
	return &AppDependencies{
		Stdin:      os.Stdin,
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
		Getwd:      os.Getwd,
		LoadConfig: config.Load,
		WatcherCreator: func(paths []string, log logrus.FieldLogger) (watch.Source, error) {
			return watch.New(paths, watch.WithLogger(log))
		},
		ProgramRunner: func(p *tea.Program) error {
			_, err := p.Run()
			return err
		},
		NewChecker: func(log logrus.FieldLogger) *version.Checker {
			return version.NewChecker(version.Version, log)
		},
	}
}

// app holds the state shared by all subcommands
type app struct {
	deps *AppDependencies
	log  *logrus.Logger
	cfg  *config.Config

	// Persistent flags
	configDir string
	border    string
	minWidth  int
	maxWidth  int
	color     string
	logLevel  string
	debug     bool
}

// setup configures logging and loads the config files
func (a *app) setup(cmd *cobra.Command) error {
	a.log = logrus.New()
	a.log.SetOutput(a.deps.Stderr)
	a.log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	level, err := logrus.ParseLevel(a.logLevel)
	if err != nil {
		return err
	}
	if a.debug {
		level = logrus.DebugLevel
	}
	a.log.SetLevel(level)

	switch a.color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("invalid --color %q: want auto, always or never", a.color)
	}

	dir := a.configDir
	if dir == "" {
		if dir, err = a.deps.Getwd(); err != nil {
			return fmt.Errorf("getting current directory: %w", err)
		}
	}
	if a.cfg, err = a.deps.LoadConfig(dir); err != nil {
		return err
	}
	a.log.WithFields(logrus.Fields{"dir": dir, "border": a.cfg.Border}).Debug("config loaded")
	return nil
}

// finish layers config defaults and then explicit flags onto g
func (a *app) finish(cmd *cobra.Command, g *table.Grid) error {
	if err := a.cfg.Apply(g); err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("border") {
		border, err := table.BorderTemplateByName(a.border)
		if err != nil {
			if border, err = table.NewBorderTemplate(a.border); err != nil {
				return err
			}
		}
		g.Border = border
	}

	if flags.Changed("min-width") || flags.Changed("max-width") {
		minW, maxW := g.MinWidth(), g.MaxWidth()
		if flags.Changed("min-width") {
			minW = a.minWidth
		}
		if flags.Changed("max-width") {
			maxW = a.maxWidth
		}
		if err := g.SetMaxWidth(0); err != nil {
			return err
		}
		if err := g.SetMinWidth(minW); err != nil {
			return err
		}
		if err := g.SetMaxWidth(maxW); err != nil {
			return err
		}
	}
	return nil
}

// console returns the display for command output
func (a *app) console() *display.Console {
	switch a.color {
	case "always":
		r := lipgloss.NewRenderer(a.deps.Stdout)
		r.SetColorProfile(termenv.ANSI256)
		return display.NewConsoleWithRenderer(a.deps.Stdout, r)
	case "never":
		r := lipgloss.NewRenderer(a.deps.Stdout)
		r.SetColorProfile(termenv.Ascii)
		return display.NewConsoleWithRenderer(a.deps.Stdout, r)
	}
	return display.NewConsole(a.deps.Stdout)
}

func (a *app) write(g *table.Grid) error {
	return g.Render(a.console())
}

// loadDocument builds a grid from a document file, or from stdin when
// path is empty or "-"
func (a *app) loadDocument(path, format string) (*table.Grid, error) {
	var doc *document.Document
	if path == "" || path == "-" {
		f, err := document.ParseFormat(format)
		if err != nil {
			return nil, err
		}
		data, err := io.ReadAll(a.deps.Stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		if doc, err = document.Parse(data, f); err != nil {
			return nil, err
		}
	} else {
		var err error
		if doc, err = document.Load(path); err != nil {
			return nil, err
		}
	}
	return doc.Build()
}

// loadCSV builds a grid from a CSV file, or from stdin when path is empty
// or "-"
func (a *app) loadCSV(path string, opts source.CSVOptions) (*table.Grid, error) {
	var (
		recs *source.Records
		err  error
	)
	if path == "" || path == "-" {
		recs, err = source.ReadCSV(a.deps.Stdin, opts)
	} else {
		recs, err = source.LoadCSV(path, opts)
	}
	if err != nil {
		return nil, err
	}
	return recs.Grid()
}

// fileLoader picks the loader for path by its extension
func (a *app) fileLoader(cmd *cobra.Command, path string) tui.Loader {
	return func() (*table.Grid, error) {
		var (
			g   *table.Grid
			err error
		)
		if strings.EqualFold(filepath.Ext(path), ".csv") {
			g, err = a.loadCSV(path, source.CSVOptions{Header: true})
		} else {
			g, err = a.loadDocument(path, "")
		}
		if err != nil {
			return nil, err
		}
		if err := a.finish(cmd, g); err != nil {
			return nil, err
		}
		return g, nil
	}
}

// watchRender renders once and then again on every change to path until
// ctx is done or the watcher stops
func (a *app) watchRender(ctx context.Context, path string, load tui.Loader) error {
	g, err := load()
	if err != nil {
		return err
	}
	if err := a.write(g); err != nil {
		return err
	}

	src, err := a.deps.WatcherCreator([]string{path}, a.log)
	if err != nil {
		return fmt.Errorf("failed to start file watcher: %w", err)
	}
	defer src.Close()

	log := a.log.WithField("path", path)
	log.Info("watching for changes")

	for {
		select {
		case <-ctx.Done():
			return nil

		case e, ok := <-src.Changes():
			if !ok {
				return nil
			}
			if e.Removed {
				log.Warn("file removed")
				continue
			}
			g, err := load()
			if err != nil {
				// Keep watching, the next save may fix it
				log.WithError(err).Error("reload failed")
				continue
			}
			if err := a.write(g); err != nil {
				return err
			}
			log.Debug("re-rendered")

		case err, ok := <-src.Errors():
			if !ok {
				return nil
			}
			log.WithError(err).Warn("watch error")
		}
	}
}

// runView runs the interactive viewer for path
func (a *app) runView(cmd *cobra.Command, path string, watching, fit bool) error {
	load := a.fileLoader(cmd, path)
	model := tui.NewModel(filepath.Base(path), load, tui.WithFitWidth(fit))
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context()))

	if watching {
		src, err := a.deps.WatcherCreator([]string{path}, a.log)
		if err != nil {
			return fmt.Errorf("failed to start file watcher: %w", err)
		}
		defer src.Close()

		go runWatchLoop(p, src)
	}

	return a.deps.ProgramRunner(p)
}

// runWatchLoop forwards watcher events to the viewer until the watcher stops
func runWatchLoop(sender ProgramSender, src watch.Source) {
	sender.Send(tui.WatcherStartedMsg{})

	for {
		select {
		case e, ok := <-src.Changes():
			if !ok {
				sender.Send(tui.WatcherStoppedMsg{})
				return
			}
			sender.Send(tui.FileChangedMsg{Event: e})

		case err, ok := <-src.Errors():
			if !ok {
				sender.Send(tui.WatcherStoppedMsg{})
				return
			}
			sender.Send(tui.WatcherFailedMsg{Err: err})
		}
	}
}
