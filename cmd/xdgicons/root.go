package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/codelif/xdgicons/v2"
	"github.com/codelif/xdgicons/v2/internal/config"
)

// Version is set via -ldflags.
var Version = "dev"

// app is the state shared by every subcommand, filled in before any of
// them runs.
type app struct {
	cfgFile       string
	theme         string
	fallbackTheme string
	searchPaths   []string
	size          uint16
	scale         uint16
	logLevel      string

	cfg     *config.Config
	cfgPath string
	logger  *slog.Logger
	lookup  *xdgicons.IconLookup
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "xdgicons",
		Short: "Find freedesktop themed icons",
		Long: TitleStyle.Render("xdgicons") + SubtitleStyle.Render(" - find freedesktop themed icons") + `

Resolves icon names to files through the current icon theme, the themes
it inherits from and the fallback theme, picking the file that best
fits the requested size and scale.

` + SubtitleStyle.Render("Examples:") + `
  xdgicons lookup firefox --size 32
  xdgicons chain Adwaita
  xdgicons render audio-volume-high-symbolic -o volume.png --color '#3584e4'`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default is "+config.DefaultPath()+")")
	flags.StringVar(&a.theme, "theme", "", "icon theme (default is the desktop's theme)")
	flags.StringVar(&a.fallbackTheme, "fallback-theme", "", "theme searched after the icon theme (default hicolor)")
	flags.StringArrayVar(&a.searchPaths, "search-path", nil, "directory to search for themes, repeatable (default XDG icon dirs)")
	flags.Uint16Var(&a.size, "size", 0, "icon size in pixels (default 48)")
	flags.Uint16Var(&a.scale, "scale", 0, "display scale (default 1)")
	flags.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")

	rootCmd.AddCommand(
		newLookupCmd(a),
		newExistsCmd(a),
		newChainCmd(a),
		newWarmCmd(a),
		newRenderCmd(a),
		newConfigCmd(a),
	)

	return rootCmd
}

// setup loads the config, applies flags that were set on top of it and
// builds the logger and the icon lookup.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, cfgPath, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("theme") {
		cfg.Theme = a.theme
	}
	if flags.Changed("fallback-theme") {
		cfg.FallbackTheme = a.fallbackTheme
	}
	if flags.Changed("search-path") {
		cfg.SearchPaths = a.searchPaths
	}
	if flags.Changed("size") {
		cfg.Size = a.size
	}
	if flags.Changed("scale") {
		cfg.Scale = a.scale
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}
	handler := log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
		Prefix: "xdgicons",
		Level:  level,
	})

	a.cfg = cfg
	a.cfgPath = cfgPath
	a.logger = slog.New(handler)

	opts := []xdgicons.Option{xdgicons.WithLogger(a.logger)}
	if cfg.Theme != "" {
		opts = append(opts, xdgicons.WithTheme(cfg.Theme))
	}
	if cfg.FallbackTheme != "" {
		opts = append(opts, xdgicons.WithFallbackTheme(cfg.FallbackTheme))
	}
	if len(cfg.SearchPaths) > 0 {
		opts = append(opts, xdgicons.WithSearchPaths(cfg.SearchPaths...))
	}
	a.lookup = xdgicons.NewIconLookup(opts...)

	a.logger.Debug("icon lookup ready",
		"theme", a.lookup.Theme(),
		"fallback", a.lookup.FallbackTheme(),
		"search_paths", a.lookup.SearchPaths(),
	)
	return nil
}

func main() {
	if err := fang.Execute(
		context.Background(),
		newRootCmd(),
		fang.WithVersion(Version),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}
