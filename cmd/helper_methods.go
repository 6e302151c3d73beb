package cmd

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/briandowns/spinner"

	kerrors "github.com/PolarWolf314/rvault/internal/errors"
	"github.com/PolarWolf314/rvault/internal/ui"
	"github.com/PolarWolf314/rvault/internal/workflows"
)

// startSpinner creates and starts a spinner with the given message when not in verbose or debug mode.
// Returns the spinner and a function that should be deferred to clean up.
//
// IMPORTANT: spinner.FinalMSG values do NOT need trailing newlines. The cleanup function
// calls ui.EnsureNewline() on the final message before printing it.
func startSpinner(message string) (*spinner.Spinner, func()) {
	Logger.Debugf("Starting spinner with message: %s", message)
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + message

	if err := s.Color("cyan"); err != nil {
		Logger.Warnf("Failed to set spinner color: %v", err)
	}

	quiet := !verbose && !debug
	if quiet {
		s.Start()
		log.SetOutput(io.Discard)
	} else {
		Logger.Infof("Running in verbose or debug mode: %s", message)
	}

	cleanup := func() {
		if quiet {
			log.SetOutput(os.Stdout)
		}

		finalMsg := ""
		if s.FinalMSG != "" {
			finalMsg = ui.EnsureNewline(s.FinalMSG)
			// Clear FinalMSG so s.Stop() doesn't print it.
			s.FinalMSG = ""
		}

		if quiet {
			s.Stop()
		}

		// Print final message to stdout (for tests to capture).
		if finalMsg != "" {
			fmt.Print(finalMsg)
		}
	}

	return s, cleanup
}

// nameArg returns the name given on the command line, or asks the user to
// pick one of the stored secrets.
func nameArg(ctx context.Context, env *workflows.Env, args []string, title string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}

	listed, err := workflows.List(ctx, env, workflows.ListOptions{})
	if err != nil {
		return "", err
	}
	if len(listed.Names) == 0 {
		return "", fmt.Errorf("%w: the vault is empty", kerrors.ErrSecretNotFound)
	}

	if err := needTerminal("a secret name"); err != nil {
		return "", err
	}
	Logger.Debugf("Asking for one of %d secrets", len(listed.Names))
	i, err := promptSelect(title, listed.Names)
	if err != nil {
		return "", err
	}
	return listed.Names[i], nil
}

// needTerminal fails when input is missing and there is no terminal to ask on.
func needTerminal(what string) error {
	if interactive() {
		return nil
	}
	return fmt.Errorf("%w: no terminal to ask for %s", kerrors.ErrPromptCancelled, what)
}

func success(msg string) string {
	return ui.Success.Sprint("✓") + " " + msg
}
