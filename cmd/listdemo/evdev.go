package main

import (
	"context"
	"errors"

	"github.com/BrandonKowalski/listkit/pkg/listkit"
	"github.com/BrandonKowalski/listkit/pkg/listkit/input"
)

// startEvdev forwards the device at path to l until ctx is done. An empty
// path does nothing.
func startEvdev(ctx context.Context, path string, l *listkit.List) error {
	if path == "" {
		return nil
	}
	src, err := input.Open(path, l)
	if err != nil {
		return err
	}

	log := listkit.GetLogger()
	go func() {
		if err := src.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Error("Input device stopped", "path", path, "error", err)
		}
	}()
	return nil
}
