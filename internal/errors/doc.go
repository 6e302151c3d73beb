// Package errors provides typed error values for rvault.
//
// Using sentinel errors allows callers to handle specific error conditions
// programmatically with errors.Is() rather than string matching.
//
// # Error Categories
//
//   - Vault errors: ErrNotInitialized, ErrInvalidConfig, ErrIO
//   - Secret errors: ErrInvalidName, ErrSecretNotFound
//   - Crypto errors: ErrEncryptFailed, ErrDecryptFailed, ErrKeyTool,
//     ErrNoSecretKeys, ErrKeyNotFound
//   - OTP errors: ErrOTPComputation, ErrInvalidOTPURI, ErrOTPDecode,
//     ErrOTPAmbiguous
//   - Clipboard errors: ErrClipboardUnavailable, ErrSessionUsed
//   - Prompt errors: ErrPromptCancelled
//
// # Usage
//
// Wrap errors with additional context:
//
//	return fmt.Errorf("%w: %s", errors.ErrInvalidName, name)
//
// Handle them in the CLI layer:
//
//	if errors.Is(err, kerrors.ErrNotInitialized) {
//	    // Tell the user to run `rvault init`
//	}
//
// Packages never terminate the process; only main exits non-zero.
package errors
