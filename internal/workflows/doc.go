// Package workflows implements the vault operations behind each command.
//
// A workflow takes an Env (vault root, gpg engine, key lister, passphrase
// source) and an Options struct, and returns a Result struct. It never
// prompts or prints; the cmd package resolves missing names interactively,
// formats results and drives spinners.
//
//	result, err := workflows.Show(ctx, env, workflows.ShowOptions{Name: "github"})
//	if errors.Is(err, kerrors.ErrNotInitialized) {
//	    // tell the user to run `rvault init`
//	}
//
// Every operation except Init requires the vault to be bound to a key.
// Successful operations append an entry to the audit trail; a failure to
// do so is logged and otherwise ignored.
package workflows
