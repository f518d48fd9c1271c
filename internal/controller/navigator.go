package controller

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/browser"
)

// Navigator opens a URL for the user.
type Navigator interface {
	Navigate(ctx context.Context, target string) error
}

// BrowserNavigator opens URLs in the system's default web browser.
type BrowserNavigator struct {
	// Stdout and Stderr receive the output of the browser launcher.
	// Nil discards it.
	Stdout io.Writer
	Stderr io.Writer
}

// Navigate implements Navigator.
func (n BrowserNavigator) Navigate(_ context.Context, target string) error {
	browser.Stdout = discardIfNil(n.Stdout)
	browser.Stderr = discardIfNil(n.Stderr)
	if err := browser.OpenURL(target); err != nil {
		return fmt.Errorf("failed to open browser: %w", err)
	}
	return nil
}

// PrintNavigator writes the navigation target instead of opening it.
type PrintNavigator struct {
	Output io.Writer
}

// Navigate implements Navigator.
func (n PrintNavigator) Navigate(_ context.Context, target string) error {
	_, err := fmt.Fprintln(discardIfNil(n.Output), target)
	return err
}

func discardIfNil(w io.Writer) io.Writer {
	if w == nil {
		return io.Discard
	}
	return w
}

// NavigationTarget returns the URL that navigating to u opens.
// A URL without an http:// or https:// prefix gets https://.
func NavigationTarget(u string) string {
	if strings.HasPrefix(u, "http://") || strings.HasPrefix(u, "https://") {
		return u
	}
	return "https://" + u
}
