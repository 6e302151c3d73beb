// Package logger provides leveled logging for rvault commands.
//
// Output is prefixed and coloured with fatih/color. Verbosity is controlled by
// two global flags:
//
//   - --verbose: shows info and warning messages
//   - --debug: shows everything, including debug details and errors
//
// Without flags only user-facing warnings are printed.
//
// # Usage
//
//	log := Logger{Verbose: verbose, Debug: debug}
//	log.Infof("Decrypting %s", name)
//
// The root command builds the logger in its PersistentPreRun.
package logger
