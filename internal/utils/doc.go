// Package utils provides terminal and I/O helpers shared by the commands.
//
// # Terminal Utilities
//
//   - ReadPassphraseFromTTY: reads a hidden passphrase from the controlling terminal
//   - TerminalPassphrase: a passphrase source for gpg that prompts on demand
//   - IsTerminal, IsStdoutTerminal, IsTTYAvailable: terminal detection
//
// # I/O Utilities
//
//   - ReadStdin, ReadSecret: read a piped secret value
//
// # String Utilities
//
//   - FormatList, Pluralize: human-readable output
package utils
