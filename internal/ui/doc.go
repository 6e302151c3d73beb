// Package ui provides semantic text formatting and interactive prompts for
// CLI output.
//
// Formatters render content appropriately for the terminal. When colors
// are available, content is colorized. When NO_COLOR is set or stdout is
// not a terminal, text-based decorations are used instead.
//
// # Semantic Formatters
//
//	ui.Command.Sprint("rvault init")      // Commands, `backticks`
//	ui.Path.Sprint("~/.vault")            // File paths
//	ui.Name.Sprint("github-token")        // Secret names, 'single quotes'
//	ui.Key.Sprint("ABCDEF0123456789")     // Key ids, <angle brackets>
//	ui.Secret.Sprint(value)               // Revealed values, never decorated
//	ui.Success.Sprint("✓")                // Success indicators
//	ui.Error.Sprint("✗")                  // Error indicators
//	ui.Info.Sprint("→")                   // Informational hints
//	ui.Muted.Sprint("timeout")            // De-emphasized text, (parentheses)
//
// # Prompts
//
// Select, Input and Password run a small bubbletea program on the
// controlling terminal and write to stderr, so stdout stays clean for
// piping. Escape or Ctrl-C returns errors.ErrPromptCancelled.
package ui
