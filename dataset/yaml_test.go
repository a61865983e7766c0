package dataset

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const membersDoc = `
members:
  - id: 0b7e8f0c-6d6b-4a43-9a43-7b2f4f8f2c11
    name: Ada Lovelace
    email: ada@example.org
    tier: gold
    joined: 2024-03-01T00:00:00Z
    dues_paid: true
  - name: Alan Turing
    email: alan@example.org
`

func TestDecodeMembers(t *testing.T) {
	src, err := DecodeMembers(strings.NewReader(membersDoc))
	require.NoError(t, err)
	require.Len(t, src.Members, 2)

	ada := src.Members[0]
	assert.Equal(t, "0b7e8f0c-6d6b-4a43-9a43-7b2f4f8f2c11", ada.ID.String())
	assert.Equal(t, TierGold, ada.Tier)
	assert.Equal(t, 2024, ada.Joined.Year())
	assert.True(t, ada.DuesPaid)

	alan := src.Members[1]
	assert.Equal(t, TierBasic, alan.Tier)
	assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", alan.ID.String())

	d, err := src.List(context.Background(), Query{Search: "ada"})
	require.NoError(t, err)
	assert.Equal(t, 1, d.Len())
}

func TestDecodeMembers_Empty(t *testing.T) {
	src, err := DecodeMembers(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, src.Members)
}

func TestDecodeMembers_Errors(t *testing.T) {
	_, err := DecodeMembers(strings.NewReader("members:\n  - name: x\n    tier: platinum\n"))
	assert.ErrorContains(t, err, "unknown tier")

	_, err = DecodeMembers(strings.NewReader("members:\n  - name: x\n    id: not-a-uuid\n"))
	assert.ErrorContains(t, err, "member 0")

	_, err = DecodeMembers(strings.NewReader("members: [\n"))
	assert.ErrorContains(t, err, "decoding members")
}

func TestEncodeThenLoadMembers(t *testing.T) {
	s := Synthetic{Count: 3, Seed: "io"}
	members := []Member{s.Member(0), s.Member(1), s.Member(2)}

	var buf bytes.Buffer
	require.NoError(t, EncodeMembers(&buf, members))

	path := filepath.Join(t.TempDir(), "members.yaml")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	src, err := LoadMembers(path)
	require.NoError(t, err)
	require.Len(t, src.Members, 3)
	for i := range members {
		assert.Equal(t, members[i].ID, src.Members[i].ID)
		assert.Equal(t, members[i].Name, src.Members[i].Name)
		assert.True(t, members[i].Joined.Equal(src.Members[i].Joined))
	}
}
