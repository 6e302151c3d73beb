package gpg

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const twoKeyListing = `sec:u:255:22:AAAA1111BBBB2222:1700000000:::u:::scESC:::+:::ed25519:::0:
fpr:::::::::0123456789ABCDEF0123AAAA1111BBBB2222:
grp:::::::::ABCDEF:
uid:u::::1700000000::HASH1::Alice Example <alice@example.com>::::::::::0:
ssb:u:255:18:CCCC3333DDDD4444:1700000000::::::e:::+:::cv25519::
sec:u:4096:1:EEEE5555FFFF6666:1600000000:::u:::scESC:::+:::::23::0:
uid:u::::1600000000::HASH2::Bob Example <bob@example.com>::::::::::0:
`

func TestParseKeyListing_TwoKeysNoCrossContamination(t *testing.T) {
	got := ParseKeyListing(strings.NewReader(twoKeyListing))

	assert.Equal(t, []Identity{
		{ID: "AAAA1111BBBB2222", Name: "Alice Example <alice@example.com>"},
		{ID: "EEEE5555FFFF6666", Name: "Bob Example <bob@example.com>"},
	}, got)
}

func TestParseKeyListing_JoinsMultipleUIDs(t *testing.T) {
	listing := "sec:u:255:22:KEY1:::::::\n" +
		"uid:u::::::::Work <w@example.com>:\n" +
		"uid:u::::::::Home <h@example.com>:\n"

	got := ParseKeyListing(strings.NewReader(listing))
	assert.Equal(t, []Identity{{ID: "KEY1", Name: "Work <w@example.com>, Home <h@example.com>"}}, got)
}

func TestParseKeyListing_EdgeCases(t *testing.T) {
	tests := []struct {
		name    string
		listing string
		want    []Identity
	}{
		{
			name:    "empty input",
			listing: "",
			want:    nil,
		},
		{
			name:    "uid before any key is ignored",
			listing: "uid:u::::::::Orphan:\nsec:u:1:1:KEY1:\n",
			want:    []Identity{{ID: "KEY1"}},
		},
		{
			name:    "short uid line is dropped",
			listing: "sec:u:1:1:KEY1:\nuid:u:short\n",
			want:    []Identity{{ID: "KEY1"}},
		},
		{
			name:    "sec without id drops its uids",
			listing: "sec:u:1:1:KEY1:\nuid:u::::::::One:\nsec:u\nuid:u::::::::Lost:\nsec:u:1:1:KEY2:\nuid:u::::::::Two:\n",
			want:    []Identity{{ID: "KEY1", Name: "One"}, {ID: "KEY2", Name: "Two"}},
		},
		{
			name:    "last record is flushed without trailing newline",
			listing: "sec:u:1:1:KEY1:\nuid:u::::::::One:",
			want:    []Identity{{ID: "KEY1", Name: "One"}},
		},
		{
			name:    "windows line endings",
			listing: "sec:u:1:1:KEY1:\r\nuid:u::::::::One:\r\n",
			want:    []Identity{{ID: "KEY1", Name: "One"}},
		},
		{
			name:    "escaped colon in user id",
			listing: "sec:u:1:1:KEY1:\nuid:u::::::::Team\\x3a Ops:\n",
			want:    []Identity{{ID: "KEY1", Name: "Team: Ops"}},
		},
		{
			name:    "secsub records do not start keys",
			listing: "ssb:u:1:1:SUB1:\nsec:u:1:1:KEY1:\n",
			want:    []Identity{{ID: "KEY1"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseKeyListing(strings.NewReader(tt.listing)))
		})
	}
}

func TestParseKeyListing_OversizedUIDKeepsLaterKeys(t *testing.T) {
	huge := strings.Repeat("x", 2<<20)
	listing := "sec:u:1:1:AAAA1111:\n" +
		"uid:u::::::::Alice:\n" +
		"uid:u::::::::" + huge + ":\n" +
		"sec:u:1:1:BBBB2222:\n" +
		"uid:u::::::::Bob:\n"

	got := ParseKeyListing(strings.NewReader(listing))

	if assert.Len(t, got, 2) {
		assert.Equal(t, "AAAA1111", got[0].ID)
		assert.Equal(t, "Alice, "+huge, got[0].Name)
		assert.Equal(t, Identity{ID: "BBBB2222", Name: "Bob"}, got[1])
	}
}

func TestIdentityString(t *testing.T) {
	assert.Equal(t, "KEY1", Identity{ID: "KEY1"}.String())
	assert.Equal(t, "Alice (KEY1)", Identity{ID: "KEY1", Name: "Alice"}.String())
}
