package secrets

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	kerrors "github.com/PolarWolf314/rvault/internal/errors"
)

func collect(t *testing.T, seq func(func(string, error) bool)) []string {
	t.Helper()
	var names []string
	for name, err := range seq {
		require.NoError(t, err)
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func TestResolve_JoinsRootNameAndExtension(t *testing.T) {
	root := t.TempDir()
	store := NewStore(root)

	path, err := store.Resolve("bank login")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "bank login.gpg"), path)

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err), "Resolve must not create files")
}

func TestResolve_AcceptsOTPNamespace(t *testing.T) {
	root := t.TempDir()
	store := NewStore(root)

	path, err := store.Resolve("otp/GitHub/alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "otp", "GitHub", "alice@example.com.gpg"), path)
}

func TestResolve_RejectsTraversalAndSlashes(t *testing.T) {
	root := t.TempDir()
	store := NewStore(root)

	names := []string{
		"",
		"..",
		"../outside",
		"a/b",
		"/etc/passwd",
		"nested/../../x",
		"otp/../x",
		"otp/GitHub/..",
		"otp/GitHub",
		"otp/a/b/c",
		"otp//b",
		`back\slash`,
		"semi;colon",
		"dot.name",
	}
	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			_, err := store.Resolve(name)
			assert.ErrorIs(t, err, kerrors.ErrInvalidName)
		})
	}

	entries, err := os.ReadDir(filepath.Dir(root))
	require.NoError(t, err)
	for _, e := range entries {
		assert.NotEqual(t, "outside.gpg", e.Name())
	}
}

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "github", false},
		{"with space", "bank login", false},
		{"with dash and underscore", "work_vpn-2", false},
		{"slash", "work/vpn", true},
		{"dot", "a.b", true},
		{"reserved", "otp", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, kerrors.ErrInvalidName)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestWriteThenList_RoundTripsNames(t *testing.T) {
	store := NewStore(t.TempDir())

	for _, name := range []string{"foo", "bank login", "otp/GitHub/alice"} {
		require.NoError(t, store.Write(name, []byte("ciphertext")))
	}

	assert.Equal(t, []string{"bank login", "foo", "otp/GitHub/alice"}, collect(t, store.List()))
}

func TestWrite_OverwritesAndUsesPrivateMode(t *testing.T) {
	store := NewStore(t.TempDir())
	require.NoError(t, store.Write("foo", []byte("one")))
	require.NoError(t, store.Write("foo", []byte("two")))

	path, err := store.Resolve("foo")
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "two", string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	// No temp files left behind.
	assert.Equal(t, []string{"foo"}, collect(t, store.List()))
}

func TestList_IgnoresOtherFilesAndSymlinks(t *testing.T) {
	root := t.TempDir()
	store := NewStore(root)
	require.NoError(t, store.Write("kept", []byte("x")))

	require.NoError(t, os.WriteFile(filepath.Join(root, ".rvault"), []byte(`{"id":"K"}`), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(root, "notes.txt"), []byte("x"), 0600))

	outside := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(outside, "leak.gpg"), []byte("x"), 0600))
	if err := os.Symlink(outside, filepath.Join(root, "linked")); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}
	if err := os.Symlink(filepath.Join(outside, "leak.gpg"), filepath.Join(root, "direct.gpg")); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	assert.Equal(t, []string{"kept"}, collect(t, store.List()))
}

func TestList_IsRestartable(t *testing.T) {
	store := NewStore(t.TempDir())
	require.NoError(t, store.Write("a", []byte("x")))

	first := collect(t, store.List())
	require.NoError(t, store.Write("b", []byte("x")))
	second := collect(t, store.List())

	assert.Equal(t, []string{"a"}, first)
	assert.Equal(t, []string{"a", "b"}, second)
}

func TestList_StopsEarly(t *testing.T) {
	store := NewStore(t.TempDir())
	for _, name := range []string{"a", "b", "c"} {
		require.NoError(t, store.Write(name, []byte("x")))
	}

	count := 0
	for _, err := range store.List() {
		require.NoError(t, err)
		count++
		break
	}
	assert.Equal(t, 1, count)
}

func TestList_MissingRootFails(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "missing"))
	var gotErr error
	for _, err := range store.List() {
		gotErr = err
	}
	assert.ErrorIs(t, gotErr, kerrors.ErrIO)
}

func TestMatch_FiltersWithGlob(t *testing.T) {
	store := NewStore(t.TempDir())
	for _, name := range []string{"github", "otp/GitHub/alice", "otp/AWS/bob"} {
		require.NoError(t, store.Write(name, []byte("x")))
	}

	assert.Equal(t, []string{"otp/AWS/bob", "otp/GitHub/alice"}, collect(t, store.Match("otp/**")))
	assert.Equal(t, []string{"github", "otp/AWS/bob", "otp/GitHub/alice"}, collect(t, store.Match("")))
}

func TestRemove(t *testing.T) {
	root := t.TempDir()
	store := NewStore(root)
	require.NoError(t, store.Write("otp/GitHub/alice", []byte("x")))

	require.NoError(t, store.Remove("otp/GitHub/alice"))
	assert.Empty(t, collect(t, store.List()))

	_, err := os.Stat(filepath.Join(root, "otp"))
	assert.True(t, os.IsNotExist(err), "empty otp directories should be pruned")

	_, err = os.Stat(root)
	assert.NoError(t, err, "root must survive")

	err = store.Remove("otp/GitHub/alice")
	assert.ErrorIs(t, err, kerrors.ErrSecretNotFound)
}

func TestExists(t *testing.T) {
	store := NewStore(t.TempDir())
	ok, err := store.Exists("foo")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Write("foo", []byte("x")))
	ok, err = store.Exists("foo")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestOTPName(t *testing.T) {
	assert.Equal(t, "otp/GitHub/alice@example.com", OTPName("GitHub", "alice@example.com"))
	assert.Equal(t, "otp/Acme-Corp/a-b", OTPName("Acme/Corp", `a\b`))
	assert.Equal(t, "otp/--/x", OTPName("..", "x"))
}
