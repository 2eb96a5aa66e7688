package main

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/listkit/pkg/listkit"
	"github.com/BrandonKowalski/listkit/pkg/listkit/router"
	"github.com/BrandonKowalski/listkit/pkg/listkit/sdlhost"
)

const (
	screenList router.Screen = iota
	screenConfirmClear
	screenMessage
)

const (
	actionAdd     = "add"
	actionRemove  = "remove"
	actionClear   = "clear"
	actionMode    = "mode"
	actionRefresh = "refresh"
	actionOpen    = "open"
)

var sdlActions = map[sdl.Keycode]string{
	sdl.K_a:      actionAdd,
	sdl.K_d:      actionRemove,
	sdl.K_DELETE: actionRemove,
	sdl.K_c:      actionClear,
	sdl.K_m:      actionMode,
	sdl.K_r:      actionRefresh,
}

// listOutcome is how the list screen asks the router for a dialog.
type listOutcome struct {
	Message      string
	ConfirmClear bool
}

type sdlApp struct {
	host *sdlhost.Host
	demo *demo
}

func newSDLCmd(cfg *config) *cobra.Command {
	var opts sdlhost.Options

	cmd := &cobra.Command{
		Use:   "sdl",
		Short: "Run the demo in an SDL window",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSDL(cmd.Context(), *cfg, opts)
		},
	}
	cmd.Flags().Int32Var(&opts.Width, "width", 800, "window width; 0 uses the display size")
	cmd.Flags().Int32Var(&opts.Height, "height", 600, "window height; 0 uses the display size")
	cmd.Flags().StringVar(&opts.FontPath, "font", "", "TTF font for items without a family")
	cmd.Flags().Int32Var(&opts.Margin, "margin", 8, "gap around the list")
	return cmd
}

func runSDL(ctx context.Context, cfg config, opts sdlhost.Options) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	tr, err := newTranslator(cfg.Lang)
	if err != nil {
		return err
	}

	opts.Title = "listkit"
	host, err := sdlhost.Init(opts)
	if err != nil {
		return err
	}
	defer host.Close()

	settings := listkit.DefaultListSettings()
	settings.SelectionMode = cfg.Mode
	d := newDemo(listkit.New(settings), tr, cfg.Seed, cfg.Refresh)
	d.seed(cfg.Items)
	defer d.stopRefresh()

	if err := startEvdev(ctx, cfg.Evdev, d.list); err != nil {
		return err
	}

	app := &sdlApp{host: host, demo: d}
	r := router.New().Recoverable(listkit.ErrCancelled)
	r.Register(screenList, app.listScreen).
		Register(screenConfirmClear, app.confirmScreen).
		Register(screenMessage, app.messageScreen).
		OnTransition(app.transition)

	err = r.Run(ctx, screenList, nil)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// listScreen handles in-place actions itself and returns only for those
// that need a dialog.
func (a *sdlApp) listScreen(ctx context.Context, _ any) (any, error) {
	d := a.demo
	for {
		res, err := a.host.RunList(ctx, sdlhost.ListScreen{
			List:     d.list,
			Status:   d.status,
			Actions:  sdlActions,
			Activate: actionOpen,
		})
		if err != nil {
			return nil, err
		}

		switch res.Action {
		case actionAdd:
			d.add()
		case actionMode:
			d.cycleMode()
		case actionRefresh:
			d.toggleRefresh(ctx)
		case actionRemove:
			if msg := d.removeCurrent(); msg != "" {
				return listOutcome{Message: msg}, nil
			}
		case actionClear:
			if msg := d.canClear(); msg != "" {
				return listOutcome{Message: msg}, nil
			}
			return listOutcome{ConfirmClear: true}, nil
		case actionOpen:
			return listOutcome{Message: d.doubleClicked(res.Index)}, nil
		}
	}
}

func (a *sdlApp) confirmScreen(ctx context.Context, _ any) (any, error) {
	yes, err := a.host.Confirm(ctx, sdlhost.Dialog{
		Text: a.demo.tr.T("ConfirmClear"),
		Hint: a.demo.tr.T("ConfirmHint"),
	})
	if err != nil {
		return nil, err
	}
	return yes, nil
}

func (a *sdlApp) messageScreen(ctx context.Context, input any) (any, error) {
	return nil, a.host.Message(ctx, sdlhost.Dialog{
		Text: input.(string),
		Hint: a.demo.tr.T("MessageHint"),
	})
}

func (a *sdlApp) transition(out router.Outcome, stack *router.Stack) (router.Screen, any) {
	switch out.From {
	case screenList:
		if out.Err != nil {
			return router.ScreenExit, nil
		}
		res := out.Result.(listOutcome)
		stack.Push(screenList, nil, nil)
		if res.ConfirmClear {
			return screenConfirmClear, nil
		}
		return screenMessage, res.Message

	case screenConfirmClear:
		if yes, ok := out.Result.(bool); ok && yes {
			a.demo.clear()
		}
	}

	if stack.IsEmpty() {
		return screenList, nil
	}
	return stack.Back()
}
