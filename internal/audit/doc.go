// Package audit records which vault operations ran and when.
//
// Entries are JSON Lines in <vault>/.rvault-audit.jsonl:
//
//	{"ts":"2026-01-02T15:04:05.000000Z","op":"add","name":"github","key_id":"ABCDEF0123456789"}
//
// Only operation names, secret names and key ids are recorded. Logging is
// best effort and malformed lines are skipped when reading.
package audit
