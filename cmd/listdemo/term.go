package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/BrandonKowalski/listkit/pkg/listkit"
	"github.com/BrandonKowalski/listkit/pkg/listkit/termhost"
)

var errNotTerminal = errors.New("stdout is not a terminal")

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func newTermCmd(cfg *config) *cobra.Command {
	return &cobra.Command{
		Use:   "term",
		Short: "Run the demo in the terminal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !isTerminal(os.Stdout) || !isTerminal(os.Stdin) {
				return errNotTerminal
			}
			return runTerm(cmd.Context(), *cfg)
		},
	}
}

func runTerm(ctx context.Context, cfg config) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	tr, err := newTranslator(cfg.Lang)
	if err != nil {
		return err
	}

	d := newDemo(termhost.NewList(cfg.Mode), tr, cfg.Seed, cfg.Refresh)
	d.seed(cfg.Items)
	defer d.stopRefresh()

	if err := startEvdev(ctx, cfg.Evdev, d.list); err != nil {
		return err
	}

	m := termhost.New(d.list, termOptions(ctx, d))
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("failed to run terminal list: %w", err)
	}
	return nil
}

// termOptions binds the demo's actions to keys of the terminal host.
func termOptions(ctx context.Context, d *demo) termhost.Options {
	flash := func(m *termhost.Model, msg string) {
		if msg != "" {
			m.Flash(msg)
		}
	}

	return termhost.Options{
		Status: func(*listkit.List) string {
			return d.status() + "   " + d.tr.T("Hint")
		},
		Actions: map[string]termhost.Action{
			"a": func(*termhost.Model) tea.Cmd {
				d.add()
				return nil
			},
			"d": func(m *termhost.Model) tea.Cmd {
				flash(m, d.removeCurrent())
				return nil
			},
			"delete": func(m *termhost.Model) tea.Cmd {
				flash(m, d.removeCurrent())
				return nil
			},
			"c": func(m *termhost.Model) tea.Cmd {
				if msg := d.canClear(); msg != "" {
					flash(m, msg)
					return nil
				}
				m.Confirm(d.tr.T("ConfirmClear")+" ("+d.tr.T("ConfirmHint")+")", func(*termhost.Model) tea.Cmd {
					d.clear()
					return nil
				})
				return nil
			},
			"m": func(*termhost.Model) tea.Cmd {
				d.cycleMode()
				return nil
			},
			"r": func(*termhost.Model) tea.Cmd {
				d.toggleRefresh(ctx)
				return nil
			},
		},
		OnActivate: func(m *termhost.Model, index int) tea.Cmd {
			flash(m, d.doubleClicked(index))
			return nil
		},
	}
}
