package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"napkinwire/logger"
	"napkinwire/prompt"
	"napkinwire/sketch"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if hints := errors.GetAllHints(err); len(hints) > 0 {
			fmt.Fprintf(os.Stderr, "Hint: %s\n", strings.Join(hints, "; "))
		}
		os.Exit(1)
	}
}

// app holds what every command shares once flags are parsed.
type app struct {
	configPath string
	jsonLogs   bool
	verbosity  int
	config     *Config
}

type renderFlags struct {
	prompt bool
	note   string
	copy   bool
	png    string
	txt    string
	watch  bool
	mode   string
	snap   int
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "napkinwire [file]",
		Short: "Sketch diagrams and UI mockups, hand them to an LLM as ASCII",
		Long: `napkinwire turns freehand shapes into a fixed-grid ASCII picture with a
numbered legend and the connections its arrows imply, ready to paste into
a language model prompt.

Examples:
  napkinwire                         # Open an empty sketch pad
  napkinwire draw flow.napkin        # Edit a saved sketch
  napkinwire render flow.napkin      # Print grid, legend and connections
  napkinwire render flow.napkin --prompt --copy`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadConfig(a.configPath)
			if err != nil {
				return err
			}
			a.config = config

			// The sketch pad owns the terminal, so it logs to a file.
			if cmd.Name() == "draw" || cmd.Parent() == nil {
				if a.verbosity > 0 {
					return logger.InitializeFile(config.GetSavePath(logFilename), a.verbosity)
				}
				return nil
			}
			return logger.Initialize(a.jsonLogs, a.verbosity)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logger.Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDraw(args)
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default ~/.napkinwire.toml)")
	root.PersistentFlags().BoolVar(&a.jsonLogs, "json-logs", false, "emit logs as JSON")
	root.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", "increase log verbosity (-v info, -vv debug)")

	root.AddCommand(a.newDrawCmd(), a.newRenderCmd(), a.newConfigCmd())
	return root
}

func (a *app) newDrawCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "draw [file]",
		Short: "Open the terminal sketch pad",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDraw(args)
		},
	}
}

func (a *app) newRenderCmd() *cobra.Command {
	var flags renderFlags
	cmd := &cobra.Command{
		Use:   "render <file>",
		Short: "Render a saved sketch as ASCII",
		Long: `Render a saved sketch (.napkin, .json or .yaml) to the fixed-size grid
and print it with its legend and connections, or as a complete prompt.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runRender(cmd.Context(), cmd.OutOrStdout(), args[0], flags)
		},
	}

	cmd.Flags().BoolVar(&flags.prompt, "prompt", false, "print the assembled LLM prompt")
	cmd.Flags().StringVar(&flags.note, "note", "", "free-form note appended to the prompt")
	cmd.Flags().BoolVar(&flags.copy, "copy", false, "copy the prompt to the clipboard")
	cmd.Flags().StringVar(&flags.png, "png", "", "also export a PNG to this path")
	cmd.Flags().StringVar(&flags.txt, "txt", "", "also export the grid to this text file")
	cmd.Flags().BoolVar(&flags.watch, "watch", false, "re-render whenever the file changes")
	cmd.Flags().StringVar(&flags.mode, "mode", "", "override the sketch mode (diagram or mockup)")
	cmd.Flags().IntVar(&flags.snap, "snap", 0, "override the snap size in pixels")
	return cmd
}

func (a *app) newConfigCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Long: `Show the configuration after defaults, the config file and NAPKINWIRE_*
environment variables have been merged.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printConfig(cmd.OutOrStdout(), a.config, format)
		},
	}
	cmd.Flags().StringVar(&format, "format", "toml", "output format: toml, json, yaml")
	return cmd
}

func printConfig(out io.Writer, config *Config, format string) error {
	switch format {
	case "json":
		data, err := json.MarshalIndent(config, "", "  ")
		if err != nil {
			return errors.Wrap(err, "failed to marshal config to JSON")
		}
		fmt.Fprintln(out, string(data))
	case "yaml":
		data, err := yaml.Marshal(config)
		if err != nil {
			return errors.Wrap(err, "failed to marshal config to YAML")
		}
		fmt.Fprintf(out, "# napkinwire configuration\n%s", data)
	case "toml":
		data, err := toml.Marshal(config)
		if err != nil {
			return errors.Wrap(err, "failed to marshal config to TOML")
		}
		fmt.Fprintf(out, "# napkinwire configuration\n%s", data)
	default:
		return errors.WithHint(errors.Newf("unsupported format %q", format), "supported: toml, json, yaml")
	}
	return nil
}

func (a *app) runDraw(args []string) error {
	log := logger.Named("tui")

	opts, err := a.config.Options()
	if err != nil {
		return err
	}
	doc := NewDocument(opts.Mode)

	filename := ""
	if len(args) == 1 {
		filename = args[0]
		if _, err := os.Stat(filename); err == nil {
			if err := doc.LoadFromFile(filename); err != nil {
				return err
			}
		}
	}

	m, err := newModel(a.config, doc, filename, log)
	if err != nil {
		return err
	}
	log.Infow("sketch pad started", "file", filename, "shapes", doc.Len(), "mode", doc.Mode().String())

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return errors.Wrap(err, "sketch pad failed")
	}
	return nil
}

func (a *app) renderOptions(doc *Document, flags renderFlags) (sketch.Options, error) {
	opts, err := a.config.Options()
	if err != nil {
		return sketch.Options{}, err
	}
	opts.Mode = doc.Mode()
	if flags.mode != "" {
		if opts.Mode, err = sketch.ParseMode(flags.mode); err != nil {
			return sketch.Options{}, errors.WithHint(err, "--mode takes diagram or mockup")
		}
	}
	if flags.snap > 0 {
		opts.SnapSize = flags.snap
	}
	return opts, opts.Validate()
}

func (a *app) runRender(ctx context.Context, out io.Writer, filename string, flags renderFlags) error {
	log := logger.Named("render")

	render := func() error {
		doc := NewDocument(sketch.ModeDiagram)
		if err := doc.LoadFromFile(filename); err != nil {
			return err
		}
		opts, err := a.renderOptions(doc, flags)
		if err != nil {
			return err
		}
		shapes := doc.Shapes()
		res, err := sketch.Render(shapes, opts)
		if err != nil {
			return err
		}
		log.Debugw("rendered", "file", filename, "shapes", len(shapes), "labels", res.Labels.Len(), "connections", len(res.Connections))

		if flags.copy {
			text, err := copyPrompt(shapes, opts, flags.note)
			if err != nil {
				return err
			}
			log.Infow("prompt copied", "bytes", len(text))
		}
		if flags.prompt {
			fmt.Fprint(out, prompt.Assemble(res, shapes, opts, flags.note))
		} else {
			fmt.Fprintln(out, res.Grid.String())
			fmt.Fprintln(out)
			fmt.Fprintln(out, strings.Join(legendLines(res, opts.Mode, 0), "\n"))
		}

		if flags.png != "" {
			if err := exportPNG(flags.png, shapes, opts); err != nil {
				return err
			}
			log.Infow("exported png", "file", flags.png)
		}
		if flags.txt != "" {
			if err := exportTXT(flags.txt, shapes, opts); err != nil {
				return err
			}
			log.Infow("exported txt", "file", flags.txt)
		}
		return nil
	}

	if err := render(); err != nil {
		return err
	}
	if !flags.watch {
		return nil
	}

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	watcher, err := newFileWatcher(filename, render, logger.Named("watch"))
	if err != nil {
		return err
	}
	log.Infow("watching for changes", "file", filename)
	return watcher.Run(ctx)
}
