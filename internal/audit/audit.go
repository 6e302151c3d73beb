package audit

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// FileName is the audit log inside the vault root. It never ends in the
// secret suffix, so listings skip it.
const FileName = ".rvault-audit.jsonl"

// TimeFormat is UTC with microseconds.
const TimeFormat = "2006-01-02T15:04:05.000000Z"

// Operation names recorded in the log.
const (
	OpInit   = "init"
	OpAdd    = "add"
	OpRemove = "remove"
	OpShow   = "show"
	OpClip   = "clip"
	OpOTP    = "otp"
)

// Entry is one audit record. It never carries secret material.
type Entry struct {
	Timestamp string `json:"ts"`
	Operation string `json:"op"`
	Name      string `json:"name,omitempty"`
	KeyID     string `json:"key_id,omitempty"`
}

// Path returns the audit log location for a vault root.
func Path(root string) string {
	return filepath.Join(root, FileName)
}

// Log appends entry to the vault's audit log. Callers treat a failure as a
// warning; an operation never fails because auditing did.
func Log(root string, entry Entry) error {
	if entry.Timestamp == "" {
		entry.Timestamp = time.Now().UTC().Format(TimeFormat)
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to encode audit entry: %w", err)
	}

	f, err := os.OpenFile(Path(root), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("failed to open audit log: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write audit log: %w", err)
	}
	return nil
}

// ReadEntries reads all entries of the vault's audit log, oldest first.
// A missing log yields no entries.
func ReadEntries(root string) ([]Entry, error) {
	data, err := os.ReadFile(Path(root))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return ParseEntries(data), nil
}

// ParseEntries parses JSON Lines data. Malformed lines, such as a partial
// write, are skipped.
func ParseEntries(data []byte) []Entry {
	var entries []Entry
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		var entry Entry
		if err := json.Unmarshal(line, &entry); err != nil || entry.Operation == "" {
			continue
		}
		entries = append(entries, entry)
	}
	return entries
}

// Filter keeps entries matching op and name; empty values match anything.
// A positive limit keeps only the most recent entries.
func Filter(entries []Entry, op, name string, limit int) []Entry {
	var kept []Entry
	for _, e := range entries {
		if op != "" && e.Operation != op {
			continue
		}
		if name != "" && e.Name != name {
			continue
		}
		kept = append(kept, e)
	}
	if limit > 0 && len(kept) > limit {
		kept = kept[len(kept)-limit:]
	}
	return kept
}
