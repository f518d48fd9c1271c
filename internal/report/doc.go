// Package report paints phishcheck view state onto an output stream.
//
// This package contains writers for different output formats:
//   - SimpleWriter: Human-readable, optionally colored text for terminal display
//   - MarkdownWriter: Markdown for sharing results in issues or chat
//   - JSONWriter: Structured JSON output for tool integration
//
// Design decision: Writers never decide what is visible. They receive a
// view.State whose visibility flags were already computed by package view,
// and only translate those flags into text. Adding an output format
// therefore cannot change verdict semantics.
//
// Writers implement the Writer interface, allowing them to be used
// interchangeably.
package report
