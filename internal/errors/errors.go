package errors

import "errors"

// Vault state errors indicate issues with the vault directory or its key binding.
var (
	// ErrNotInitialized indicates the vault has no valid identity binding.
	ErrNotInitialized = errors.New("vault has not been initialized")

	// ErrInvalidConfig indicates the rvault configuration is malformed.
	ErrInvalidConfig = errors.New("configuration is invalid")

	// ErrIO indicates a filesystem fault inside the vault.
	ErrIO = errors.New("vault filesystem error")
)

// Secret errors indicate issues with individual secret records.
var (
	// ErrInvalidName indicates a logical name failed the charset or traversal checks.
	ErrInvalidName = errors.New("invalid secret name")

	// ErrSecretNotFound indicates no record exists for the logical name.
	ErrSecretNotFound = errors.New("secret not found")
)

// Cryptographic errors indicate failures of the external gpg engine.
var (
	// ErrEncryptFailed indicates gpg exited non-zero while encrypting.
	ErrEncryptFailed = errors.New("failed to encrypt secret")

	// ErrDecryptFailed indicates gpg exited non-zero while decrypting.
	ErrDecryptFailed = errors.New("failed to decrypt secret")

	// ErrKeyTool indicates the key listing could not be produced.
	ErrKeyTool = errors.New("failed to list secret keys")

	// ErrNoSecretKeys indicates the keyring holds no usable secret key.
	ErrNoSecretKeys = errors.New("no secret keys available")

	// ErrKeyNotFound indicates the requested key is not in the keyring.
	ErrKeyNotFound = errors.New("secret key not found")
)

// OTP errors indicate problems with one-time password secrets.
var (
	// ErrOTPComputation indicates a code could not be derived from the stored URI.
	ErrOTPComputation = errors.New("failed to compute one-time code")

	// ErrInvalidOTPURI indicates an enrollment URI lacks the issuer or account.
	ErrInvalidOTPURI = errors.New("invalid otpauth URI")

	// ErrOTPDecode indicates an image held no decodable OTP payload.
	ErrOTPDecode = errors.New("no OTP payload found in image")

	// ErrOTPAmbiguous indicates an image held more than one candidate payload.
	ErrOTPAmbiguous = errors.New("image holds more than one OTP payload")
)

// Clipboard errors.
var (
	// ErrClipboardUnavailable indicates the clipboard could not be written.
	ErrClipboardUnavailable = errors.New("clipboard is unavailable")

	// ErrSessionUsed indicates an exposure session was reused after it started.
	ErrSessionUsed = errors.New("clipboard session already used")
)

// ErrPromptCancelled indicates the user aborted an interactive prompt.
var ErrPromptCancelled = errors.New("prompt cancelled")
