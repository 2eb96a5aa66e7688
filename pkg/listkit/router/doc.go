// Package router moves an application between blocking screens.
//
// Each screen is a function that takes an input, blocks until the user is
// done with it, and returns a result. A single transition function decides
// where to go next, so all navigation lives in one place. The navigation
// stack keeps the inputs of screens the user can return to, together with
// resume state such as a list's scroll offset and current index.
//
//	const (
//	    ScreenList router.Screen = iota
//	    ScreenConfirm
//	)
//
//	r := router.New()
//	r.Register(ScreenList, func(ctx context.Context, input any) (any, error) {
//	    return listScreen(ctx, input.(ListInput))
//	})
//	r.Register(ScreenConfirm, func(ctx context.Context, input any) (any, error) {
//	    return confirmScreen(ctx, input.(ConfirmInput))
//	})
//
//	r.OnTransition(func(out router.Outcome, stack *router.Stack) (router.Screen, any) {
//	    switch out.From {
//	    case ScreenList:
//	        res := out.Result.(ListResult)
//	        if res.Action == ActionClear {
//	            stack.Push(out.From, out.Input, res.Resume)
//	            return ScreenConfirm, ConfirmInput{Prompt: "Clear all items?"}
//	        }
//	    case ScreenConfirm:
//	        // A dismissed dialog arrives as out.Err == listkit.ErrCancelled.
//	        return stack.Back()
//	    }
//	    return router.ScreenExit, nil
//	})
//
//	err := r.Run(ctx, ScreenList, ListInput{})
//
// Screens that fail with an error other than the ones passed to
// Recoverable stop the router.
package router
