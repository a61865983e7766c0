package dataset

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_TokensAreUnique(t *testing.T) {
	a := FromSlice(nil)
	b := FromSlice(nil)
	assert.NotEqual(t, a.Identity(), b.Identity())
}

func TestAt_OutOfRangePanics(t *testing.T) {
	d := FromSlice([]Member{{Name: "a"}})
	assert.Equal(t, "a", d.At(0).Name)
	assert.Panics(t, func() { d.At(1) })
	assert.Panics(t, func() { d.At(-1) })
}

func TestRowKey(t *testing.T) {
	id := uuid.New()
	assert.Equal(t, id.String(), RowKey(Member{ID: id}, 4))
	assert.Equal(t, "row-4", RowKey(Member{}, 4))
}

func TestSynthetic_Deterministic(t *testing.T) {
	s := Synthetic{Count: 10, Seed: "seed"}
	assert.Equal(t, s.Member(3), s.Member(3))
	assert.NotEqual(t, s.Member(3).ID, s.Member(4).ID)

	other := Synthetic{Count: 10, Seed: "other"}
	assert.NotEqual(t, s.Member(3).ID, other.Member(3).ID)
}

func TestSynthetic_ListAll(t *testing.T) {
	s := Synthetic{Count: 1_000_000, Seed: "x"}
	d, err := s.List(context.Background(), Query{})
	require.NoError(t, err)
	assert.Equal(t, 1_000_000, d.Len())
	assert.Equal(t, s.Member(999_999), d.At(999_999))
}

func TestSynthetic_ListSearch(t *testing.T) {
	s := Synthetic{Count: 2000, Seed: "x"}
	d, err := s.List(context.Background(), Query{Search: "GRACE"})
	require.NoError(t, err)
	require.Positive(t, d.Len())
	assert.Less(t, d.Len(), 2000)
	for i := 0; i < d.Len(); i++ {
		assert.Contains(t, strings.ToLower(d.At(i).Name), "grace")
	}
}

func TestSynthetic_ListCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Synthetic{Count: 10}.List(ctx, Query{Search: "a"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMemory_List(t *testing.T) {
	src := &Memory{Members: []Member{
		{Name: "Ada Lovelace", Email: "ada@example.org"},
		{Name: "Alan Turing", Email: "alan@example.org"},
	}}

	all, err := src.List(context.Background(), Query{})
	require.NoError(t, err)
	assert.Equal(t, 2, all.Len())

	hit, err := src.List(context.Background(), Query{Search: "turing"})
	require.NoError(t, err)
	require.Equal(t, 1, hit.Len())
	assert.Equal(t, "Alan Turing", hit.At(0).Name)

	again, err := src.List(context.Background(), Query{})
	require.NoError(t, err)
	assert.NotEqual(t, all.Identity(), again.Identity(), "every listing is a new snapshot")
}
