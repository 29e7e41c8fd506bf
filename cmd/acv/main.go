// acv is a terminal contact viewer whose layout follows the orientation of
// the screen.
//
// In portrait it shows either the contact list or one contact's details.
// In landscape it shows the list and the details side by side. The
// orientation comes from the terminal's shape, from --orientation, from a
// watched orientation file, or from the rotate key.
//
// Usage:
//
//	acv                              # Built-in contacts, orientation from terminal size
//	acv --contacts people.yaml       # Load contacts from a YAML file
//	acv --orientation landscape      # Force an orientation
//	acv --orientation-file /tmp/o    # Follow the orientation written to a file
//	acv --select 3                   # Start with contact 3 selected
//	acv --json --orientation landscape --select 3   # Dump the view tree and exit
//	acv --version                    # Print version and exit
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/daviddao/adaptive_contacts/internal/config"
	"github.com/daviddao/adaptive_contacts/internal/datasource"
	"github.com/daviddao/adaptive_contacts/internal/layout"
	"github.com/daviddao/adaptive_contacts/internal/navigation"
	"github.com/daviddao/adaptive_contacts/internal/snapshot"
	"github.com/daviddao/adaptive_contacts/internal/telemetry"
)

// Version is set via ldflags at build time (e.g. -X main.Version=v0.1.0).
var Version = "dev"

type options struct {
	configPath string
	jsonMode   bool
	selectID   int
	debug      bool
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:           "acv",
		Short:         "Adaptive contact viewer",
		Long:          "A contact list that shows list and detail side by side in landscape and one at a time in portrait.",
		Version:       Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}
	cmd.SetVersionTemplate("acv {{.Version}}\n")

	f := cmd.Flags()
	f.StringVar(&opts.configPath, "config", "", "config file (default: $ACV_CONFIG or ~/.config/acv/config.yaml)")
	f.BoolVar(&opts.jsonMode, "json", false, "dump the current view tree as JSON and exit (no TUI)")
	f.IntVar(&opts.selectID, "select", 0, "select the contact with this id on startup")
	f.BoolVar(&opts.debug, "debug", false, "log at debug level")
	f.String("contacts", "", "contacts YAML file (default: $ACV_CONTACTS or .acv/contacts.yaml)")
	f.String("orientation", "auto", "orientation: auto|portrait|landscape")
	f.String("orientation-file", "", "file holding the orientation; watched for changes")
	f.Float64("aspect", layout.DefaultAspect, "width/height ratio in cells at which the terminal counts as landscape")
	f.String("log-file", "", "write JSON logs to this file")
	f.String("log-level", "info", "log level: debug|info|warn|error")

	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "acv: %v\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, opts options) error {
	cfg, err := config.Load(opts.configPath, cmd.Flags())
	if err != nil {
		return err
	}

	level, err := telemetry.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	if opts.debug {
		level = slog.LevelDebug
	}
	logger, closer, err := telemetry.InitLogger(level, cfg.Log.File)
	if err != nil {
		return err
	}
	defer closer.Close()

	store, path, err := datasource.Open(cfg.Contacts.File)
	if err != nil {
		return err
	}
	if path == "" {
		path = "built-in"
	}
	logger.Info("contacts loaded", "source", path, "count", store.Len())

	ctrl := navigation.New(store, nil, logger)
	m := newModel(ctrl, cfg.Layout.Aspect, logger)
	m.source = path
	m.signal.Forced = cfg.Orientation()

	orientationFile := cfg.Layout.OrientationFile
	if orientationFile != "" {
		o, err := layout.ReadOrientationFile(orientationFile)
		if err != nil {
			return err
		}
		m.signal.File = o
	}
	m.applyOrientation()

	if cmd.Flags().Changed("select") {
		if !m.selectByID(opts.selectID) {
			return fmt.Errorf("--select %d: no such contact", opts.selectID)
		}
	}

	// --json mode: build the frame, print JSON, exit.
	if opts.jsonMode {
		return writeJSON(cmd.OutOrStdout(), snapshot.Build(ctrl))
	}

	var w *datasource.Watcher
	if orientationFile != "" {
		w, err = datasource.NewWatcher(orientationFile)
		if err != nil {
			return fmt.Errorf("watch: %w", err)
		}
		defer w.Close()
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())

	// Feed orientation file changes into the TUI.
	if w != nil {
		go feedOrientation(w, p.Send)
	}

	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

// feedOrientation re-reads the orientation file on every change and sends
// the result until the watcher is closed.
func feedOrientation(w *datasource.Watcher, send func(tea.Msg)) {
	for {
		select {
		case <-w.Done():
			return
		case <-w.Changes():
			o, err := layout.ReadOrientationFile(w.Path())
			send(orientationFileMsg{orientation: o, err: err})
		}
	}
}

func writeJSON(out io.Writer, f *snapshot.Frame) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(f); err != nil {
		return fmt.Errorf("json: %w", err)
	}
	return nil
}
