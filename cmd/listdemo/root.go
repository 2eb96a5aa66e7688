package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/BrandonKowalski/listkit/pkg/listkit"
	"github.com/BrandonKowalski/listkit/pkg/listkit/constants"
	"github.com/BrandonKowalski/listkit/pkg/listkit/themes"
)

// flags shared by every host.
type flags struct {
	Items    int
	Mode     string
	Theme    string
	Lang     string
	Refresh  time.Duration
	Evdev    string
	LogPath  string
	LogLevel string
	Debug    bool
	Seed     int64
}

// config is the validated form of flags.
type config struct {
	flags
	Mode constants.SelectionMode
}

func newRootCmd() *cobra.Command {
	var f flags
	var cfg config

	cmd := &cobra.Command{
		Use:   "listdemo",
		Short: "Interactive demo of the listkit list widget",
		Long: "listdemo fills a list with random fruit and lets you add, remove, clear\n" +
			"and live-refresh rows in an SDL window or a terminal.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			c, err := f.validate()
			if err != nil {
				return err
			}
			cfg = c
			return initListkit(cfg, cmd.Name() == "term")
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			listkit.Close()
		},
	}

	pf := cmd.PersistentFlags()
	pf.IntVar(&f.Items, "items", 20, "number of items to start with")
	pf.StringVar(&f.Mode, "mode", "single", "selection mode: single, multi or none")
	pf.StringVar(&f.Theme, "theme", "", "theme preset ("+strings.Join(themes.Names(), ", ")+") or path to a TOML theme file")
	pf.StringVar(&f.Lang, "lang", os.Getenv("LANG"), "language for labels and item names (en, zh)")
	pf.DurationVar(&f.Refresh, "refresh", time.Second, "interval of the random refresh; 0 disables it")
	pf.StringVar(&f.Evdev, "evdev", "", "also read wheel and arrow keys from this input device (linux)")
	pf.StringVar(&f.LogPath, "log-file", "", "write logs to this file as well as stdout")
	pf.StringVar(&f.LogLevel, "log-level", "", "log level: debug, info, warn or error")
	pf.BoolVar(&f.Debug, "debug", false, "log ignored widget calls")
	pf.Int64Var(&f.Seed, "seed", 0, "random seed; 0 picks one from the clock")

	cmd.AddCommand(newSDLCmd(&cfg), newTermCmd(&cfg))
	return cmd
}

func (f flags) validate() (config, error) {
	if f.Items < 0 {
		return config{}, fmt.Errorf("--items must be >= 0, got %d", f.Items)
	}
	if f.Refresh < 0 {
		return config{}, fmt.Errorf("--refresh must be >= 0, got %s", f.Refresh)
	}
	mode, ok := constants.ParseSelectionMode(f.Mode)
	if !ok {
		return config{}, fmt.Errorf("unknown selection mode %q", f.Mode)
	}
	if f.Seed == 0 {
		f.Seed = time.Now().UnixNano()
	}
	f.Lang = normalizeLang(f.Lang)
	return config{flags: f, Mode: mode}, nil
}

// normalizeLang turns POSIX locale strings such as zh_CN.UTF-8 into BCP 47.
func normalizeLang(lang string) string {
	if i := strings.IndexAny(lang, ".@"); i >= 0 {
		lang = lang[:i]
	}
	if lang == "C" || lang == "POSIX" {
		return ""
	}
	return strings.ReplaceAll(lang, "_", "-")
}

// initListkit applies logging and the theme flag. A preset name wins over
// a file of the same name.
func initListkit(cfg config, terminal bool) error {
	opts := listkit.Options{
		LogPath:   cfg.LogPath,
		LogLevel:  cfg.LogLevel,
		Debug:     cfg.Debug,
		NoConsole: terminal,
	}
	if cfg.Theme != "" {
		if theme, ok := themes.ByName(cfg.Theme, listkit.DefaultTheme().FontPath); ok {
			opts.Theme = &theme
		} else {
			opts.ThemePath = cfg.Theme
		}
	}
	return listkit.Init(opts)
}
