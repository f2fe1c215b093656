// Package output renders analysis reports for the terminal or for machines.
//
// Three formats are supported:
//   - text     human-readable terminal output with severity colors (default)
//   - json     the full structured report
//   - markdown one section per agent, issues folded by severity
//
// Use [GetWriter] to obtain a [Writer] for a format name, or [WriteReport]
// to render straight to a file or stdout.
package output
