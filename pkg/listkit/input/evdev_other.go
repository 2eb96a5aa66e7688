//go:build !linux

package input

import (
	"context"
	"errors"

	"github.com/BrandonKowalski/listkit/pkg/listkit"
)

// ErrUnsupported is returned by Open on platforms without evdev.
var ErrUnsupported = errors.New("evdev input is only available on linux")

// Source is unavailable outside linux.
type Source struct{}

// Open always fails outside linux.
func Open(path string, _ *listkit.List) (*Source, error) {
	return nil, listkit.NewInfrastructureError("open_input_device", ErrUnsupported)
}

func (s *Source) Run(context.Context) error { return ErrUnsupported }
func (s *Source) Running() bool             { return false }
func (s *Source) Forwarded() int64          { return 0 }
func (s *Source) Close() error              { return nil }
