// Package secrets maps logical secret names onto the encrypted files of a vault.
//
// Every secret lives at <root>/<name>.gpg. Names typed by the user are flat:
// alphanumerics, spaces, underscores and dashes only. Nested names exist only
// in the otp namespace, which is generated during OTP enrollment:
//
//	<root>/github.gpg
//	<root>/otp/GitHub/alice@example.com.gpg
//
// Resolve validates before joining so a free-text name can never escape the
// vault root, and List never follows symbolic links for the same reason.
// The store only moves bytes; encryption belongs to the gpg package.
package secrets
