// Package gpg is the boundary between rvault and the gpg command line tool.
//
// Engine encrypts and decrypts payloads and KeyLister enumerates secret keys.
// GPG implements both by spawning one gpg process per call; gpgtest offers
// in-memory fakes with the same contract for tests.
//
// Passphrases are never placed on the command line. When the caller supplies a
// PassphraseSource the passphrase is piped to gpg over --passphrase-fd 0 in
// loopback pinentry mode; otherwise gpg-agent handles it.
//
// None of the calls carry a timeout: decryption may wait on pinentry for as
// long as the user takes. Cancel the context to abort.
package gpg
