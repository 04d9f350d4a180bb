package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/iw2rmb/quill"
	"github.com/iw2rmb/quill/buffer"
	"github.com/iw2rmb/quill/editor"
	"github.com/iw2rmb/quill/internal/config"
	"github.com/iw2rmb/quill/internal/log"
)

func init() {
	// Query the terminal background before the program owns stdin, so the
	// OSC 11 reply cannot leak into the document.
	_ = lipgloss.HasDarkBackground()
}

type rootOptions struct {
	configPath string
	v          *viper.Viper
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{v: config.New()}

	cmd := &cobra.Command{
		Use:          "quill [file]",
		Short:        "A small terminal text editor",
		Long:         `quill edits one file at a time with syntax highlighting for Rust and Go and incremental search.`,
		Version:      quill.VersionTag(),
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEditor(opts, args)
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "",
		"config file (default: ./.quill.yaml or ~/.config/quill/config.yaml)")
	cmd.Flags().BoolP("debug", "d", false, "write a debug log")
	cmd.Flags().String("log-file", "", "debug log path (default: quill-debug.log)")

	_ = opts.v.BindPFlag("log.debug", cmd.Flags().Lookup("debug"))
	_ = opts.v.BindPFlag("log.file", cmd.Flags().Lookup("log-file"))

	cmd.SetVersionTemplate(quill.Name + " {{.Version}}\n")
	cmd.AddCommand(newConfigCmd())
	return cmd
}

func runEditor(opts *rootOptions, args []string) error {
	cfg, used, err := config.Load(opts.v, opts.configPath)
	if err != nil {
		return err
	}
	if cfg.Log.File == "" {
		cfg.Log.File = config.Defaults().Log.File
	}

	if cfg.Log.Debug {
		cleanup, err := log.InitWithTeaLog(cfg.Log.File, quill.Name)
		if err != nil {
			return fmt.Errorf("opening debug log: %w", err)
		}
		defer cleanup()
		// Load already rejected unknown levels.
		level, _ := log.ParseLevel(cfg.Log.Level)
		log.SetMinLevel(level)
		log.Info(log.CatConfig, "starting", "version", quill.Version(), "config", used)
	}

	m := newApp(cfg, args)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

// newApp builds the editor for the optional file argument. A file that fails
// to load leaves an empty document and an error message.
func newApp(cfg config.Config, args []string) app {
	ed := editor.New(editor.Config{
		Style:        editor.NewStyle(nil, cfg.Theme),
		Banner:       quill.Banner(),
		ShowWelcome:  cfg.Editor.ShowWelcome,
		ScrollMargin: cfg.Editor.ScrollMargin,
		OnChange: func(ev editor.ChangeEvent) {
			log.Debug(log.CatBuffer, "changed", "version", ev.Version, "caret", ev.Caret.String(), "lines", ev.Lines)
		},
	})

	if len(args) == 0 {
		return app{editor: ed}
	}

	path := args[0]
	b, err := buffer.Load(path)
	if err != nil {
		log.ErrorErr(log.CatFile, "open failed", err, "path", path)
		return app{editor: ed.SetMessage(fmt.Sprintf("ERROR: Could not open file: %s", path))}
	}
	return app{editor: ed.Open(b)}
}

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the quill configuration",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write the default configuration",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := defaultConfigPath()
			if err != nil {
				return err
			}
			if len(args) == 1 {
				path = args[0]
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
			if err := config.WriteDefault(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}
	initCmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")

	cmd.AddCommand(initCmd)
	return cmd
}

func defaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return config.UserConfigPath(home), nil
}
