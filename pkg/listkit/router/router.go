package router

import (
	"context"
	"errors"
	"fmt"
)

// Screen identifies a registered screen. Applications define their own
// constants with iota.
type Screen int

// ScreenExit stops the router when returned from a transition.
const ScreenExit Screen = -1

// ScreenFunc runs a screen until the user leaves it.
type ScreenFunc func(ctx context.Context, input any) (result any, err error)

// Outcome describes how a screen finished.
type Outcome struct {
	From   Screen
	Input  any   // The input the screen was started with
	Result any   // nil when Err is set
	Err    error // A recoverable error, such as a dismissed dialog
}

// TransitionFunc picks the next screen and its input after a screen
// finishes. Return ScreenExit to stop.
type TransitionFunc func(out Outcome, stack *Stack) (next Screen, input any)

// Router runs screens and applies the transition function between them.
type Router struct {
	screens     map[Screen]ScreenFunc
	transition  TransitionFunc
	recoverable []error
	stack       *Stack
	visited     int
}

// New creates a router with an empty stack.
func New() *Router {
	return &Router{
		screens: make(map[Screen]ScreenFunc),
		stack:   NewStack(),
	}
}

// Register adds a screen.
func (r *Router) Register(screen Screen, fn ScreenFunc) *Router {
	r.screens[screen] = fn
	return r
}

// OnTransition sets the function that decides navigation.
func (r *Router) OnTransition(fn TransitionFunc) *Router {
	r.transition = fn
	return r
}

// Recoverable marks errors that are handed to the transition function in
// Outcome.Err instead of stopping the router. Matching uses errors.Is.
func (r *Router) Recoverable(errs ...error) *Router {
	r.recoverable = append(r.recoverable, errs...)
	return r
}

// Run starts at screen start and keeps navigating until the transition
// function returns ScreenExit, a screen fails, or ctx is done.
func (r *Router) Run(ctx context.Context, start Screen, input any) error {
	if r.transition == nil {
		return errors.New("router: no transition function set")
	}

	current, currentInput := start, input
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fn, ok := r.screens[current]
		if !ok {
			return fmt.Errorf("router: screen %d not registered", current)
		}

		r.visited++
		result, err := fn(ctx, currentInput)
		if err != nil && !r.isRecoverable(err) {
			return fmt.Errorf("router: screen %d: %w", current, err)
		}

		out := Outcome{From: current, Input: currentInput, Result: result, Err: err}
		if err != nil {
			out.Result = nil
		}

		next, nextInput := r.transition(out, r.stack)
		if next == ScreenExit {
			return nil
		}
		current, currentInput = next, nextInput
	}
}

func (r *Router) isRecoverable(err error) bool {
	for _, target := range r.recoverable {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// Stack returns the navigation stack.
func (r *Router) Stack() *Stack {
	return r.stack
}

// Visited counts screen runs since New.
func (r *Router) Visited() int {
	return r.visited
}
