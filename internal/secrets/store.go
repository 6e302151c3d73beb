package secrets

import (
	"errors"
	"fmt"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	kerrors "github.com/PolarWolf314/rvault/internal/errors"
)

// Extension is appended to every logical name to form the encrypted file name.
const Extension = ".gpg"

// Store maps logical secret names onto encrypted files below a vault root.
type Store struct {
	Root string
}

// NewStore returns a store rooted at root. The directory is not created.
func NewStore(root string) *Store {
	return &Store{Root: filepath.Clean(root)}
}

// Resolve returns the encrypted file path for name. It does not check existence.
//
// Returns ErrInvalidName if name would escape the vault root or fails the charset rules.
func (s *Store) Resolve(name string) (string, error) {
	if filepath.IsAbs(name) || strings.HasPrefix(name, "/") {
		return "", fmt.Errorf("%w: %q is absolute", kerrors.ErrInvalidName, name)
	}
	if err := validateLogicalName(name); err != nil {
		return "", err
	}

	path := filepath.Join(s.Root, filepath.FromSlash(name)+Extension)
	rel, err := filepath.Rel(s.Root, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %q escapes the vault", kerrors.ErrInvalidName, name)
	}
	return path, nil
}

// List walks the vault and yields the logical name of every encrypted file.
// Symbolic links are never followed and names always use '/' as separator.
// Order is traversal order; every call walks the directory again.
func (s *Store) List() iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		stop := errors.New("stop")

		// The root itself may be a link; nothing below it is followed.
		root, err := filepath.EvalSymlinks(s.Root)
		if err != nil {
			yield("", fmt.Errorf("%w: %w", kerrors.ErrIO, err))
			return
		}

		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return fmt.Errorf("%w: walking %s: %w", kerrors.ErrIO, path, err)
			}

			// Skip irregular files such as sockets, pipes, devices and symlinks
			if d.IsDir() || !d.Type().IsRegular() {
				return nil
			}
			if !strings.HasSuffix(d.Name(), Extension) {
				return nil
			}

			rel, err := filepath.Rel(root, path)
			if err != nil {
				return fmt.Errorf("%w: %w", kerrors.ErrIO, err)
			}
			name := strings.TrimSuffix(filepath.ToSlash(rel), Extension)
			if !yield(name, nil) {
				return stop
			}
			return nil
		})
		if err != nil && !errors.Is(err, stop) {
			yield("", err)
		}
	}
}

// Match yields the names accepted by a doublestar pattern such as "otp/**".
// An empty pattern matches everything.
func (s *Store) Match(pattern string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		if pattern != "" && !doublestar.ValidatePattern(pattern) {
			yield("", fmt.Errorf("%w: bad pattern %q", kerrors.ErrInvalidName, pattern))
			return
		}
		for name, err := range s.List() {
			if err != nil {
				yield("", err)
				return
			}
			if pattern != "" {
				if ok, _ := doublestar.Match(pattern, name); !ok {
					continue
				}
			}
			if !yield(name, nil) {
				return
			}
		}
	}
}

// Exists reports whether a record is stored under name.
func (s *Store) Exists(name string) (bool, error) {
	path, err := s.Resolve(name)
	if err != nil {
		return false, err
	}
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("%w: %w", kerrors.ErrIO, err)
	}
	return info.Mode().IsRegular(), nil
}

// Write stores encrypted data under name, replacing any existing record.
// The file is written to a temporary sibling and renamed into place.
func (s *Store) Write(name string, data []byte) error {
	path, err := s.Resolve(name)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("%w: creating %s: %w", kerrors.ErrIO, dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".rvault-*.tmp")
	if err != nil {
		return fmt.Errorf("%w: creating temp file: %w", kerrors.ErrIO, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: writing %s: %w", kerrors.ErrIO, tmp.Name(), err)
	}
	if err := tmp.Chmod(0600); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: %w", kerrors.ErrIO, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: %w", kerrors.ErrIO, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("%w: moving secret into place: %w", kerrors.ErrIO, err)
	}
	return nil
}

// Remove deletes the record stored under name.
//
// Returns ErrSecretNotFound if there is no such record.
func (s *Store) Remove(name string) error {
	path, err := s.Resolve(name)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", kerrors.ErrSecretNotFound, name)
		}
		return fmt.Errorf("%w: removing %s: %w", kerrors.ErrIO, path, err)
	}

	// Drop now-empty otp/<issuer> directories, never the root itself.
	for dir := filepath.Dir(path); dir != s.Root && strings.HasPrefix(dir, s.Root); dir = filepath.Dir(dir) {
		if err := os.Remove(dir); err != nil {
			break
		}
	}
	return nil
}
