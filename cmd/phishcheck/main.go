// Package main provides the entry point for the phishcheck CLI.
//
// phishcheck asks a phishing classification service whether a URL looks
// like phishing, shows the verdict with its reasons, and lets the user
// block the site, open it anyway, or send feedback.
//
// Usage:
//
//	phishcheck check <url>
//	phishcheck shell
//
// See --help for all available options.
package main

// main is the entry point for phishcheck.
func main() {
	Execute()
}
