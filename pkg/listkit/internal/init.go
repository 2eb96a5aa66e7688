// Package internal contains the shared infrastructure for the listkit widget
// and its hosts: logging, theming, colour helpers, padding and key repeat.
// Types and functions in this package are not part of the public API.
package internal
