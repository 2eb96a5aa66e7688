// Command listdemo shows a listkit list in an SDL window or a terminal.
//
//	listdemo term --items 200 --mode multi
//	listdemo sdl --theme dark --lang zh --refresh 500ms
package main

import (
	"os"
	"runtime"
)

// SDL must run on the main thread.
func init() {
	runtime.LockOSThread()
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
