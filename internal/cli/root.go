// Package cli implements the xcursor command line interface.
package cli

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/esposm03/xcursor"
	"github.com/esposm03/xcursor/internal/config"
)

var (
	themeFlag   string
	pathsFlag   []string
	verboseFlag bool

	logger = log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: false})
)

var rootCmd = &cobra.Command{
	Use:   "xcursor",
	Short: "Inspect X cursor themes and Xcursor files",
	Long: `xcursor resolves icon names through cursor theme inheritance and
decodes the Xcursor container format, showing what a compositor sees
when it loads a cursor.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verboseFlag {
			logger.SetLevel(log.DebugLevel)
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&themeFlag, "theme", "t", "", `cursor theme name (default from config, else "default")`)
	rootCmd.PersistentFlags().StringArrayVar(&pathsFlag, "path", nil, "theme search root (repeatable, overrides defaults)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable debug logging")
}

func loadConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		logger.Warn("ignoring config", "err", err)
		return &config.Config{}
	}
	return cfg
}

// searchPaths applies the flag > config > defaults precedence.
func searchPaths(cfg *config.Config) []string {
	switch {
	case len(pathsFlag) > 0:
		return xcursor.ExpandPaths(pathsFlag)
	case len(cfg.Paths) > 0:
		return xcursor.ExpandPaths(cfg.Paths)
	default:
		return xcursor.DefaultSearchPaths()
	}
}

// currentTheme loads the theme selected by flags and config.
func currentTheme() xcursor.Theme {
	cfg := loadConfig()

	name := themeFlag
	if name == "" {
		name = cfg.Theme
	}
	if name == "" {
		name = xcursor.DefaultTheme
	}

	paths := searchPaths(cfg)
	logger.Debug("loading theme", "name", name, "roots", len(paths))
	theme := xcursor.LoadTheme(name, paths)
	logger.Debug("resolved theme", "dirs", theme.Dirs, "inherits", theme.Inherits)
	return theme
}
