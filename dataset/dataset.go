// Package dataset is the in-process stand-in for the member service: it
// produces immutable Dataset snapshots that a list can window over.
//
// Every snapshot carries a Token. Two snapshots never share a token, so a
// list can tell a replaced dataset (new search, reload) from the one it is
// already showing without comparing rows.
package dataset

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// Token identifies one dataset snapshot. It is comparable and never reused
// within a process.
type Token uint64

var tokenCounter atomic.Uint64

func nextToken() Token { return Token(tokenCounter.Add(1)) }

// Tier is the membership level of a Member.
type Tier string

const (
	TierBasic  Tier = "basic"
	TierSilver Tier = "silver"
	TierGold   Tier = "gold"
)

// Member is one row of the member table.
type Member struct {
	ID       uuid.UUID
	Name     string
	Email    string
	Tier     Tier
	Joined   time.Time
	DuesPaid bool
}

// RowKey returns the content identity of a row. It is used by renderers
// that cache row output and is independent of the row's position.
func RowKey(m Member, index int) string {
	if m.ID == uuid.Nil {
		return fmt.Sprintf("row-%d", index)
	}
	return m.ID.String()
}

// ---------------------------------------------------------------------------
// Dataset
// ---------------------------------------------------------------------------

// Dataset is an immutable, indexable snapshot of members.
type Dataset struct {
	token Token
	count int
	at    func(int) Member
}

// New wraps count rows served by at in a fresh snapshot.
func New(count int, at func(int) Member) Dataset {
	return Dataset{token: nextToken(), count: max(0, count), at: at}
}

// FromSlice snapshots members.
func FromSlice(members []Member) Dataset {
	return New(len(members), func(i int) Member { return members[i] })
}

// Identity returns the snapshot token.
func (d Dataset) Identity() Token { return d.token }

// Len returns the number of rows.
func (d Dataset) Len() int { return d.count }

// At returns row i. It panics when i is out of range, like a slice index.
func (d Dataset) At(i int) Member {
	if i < 0 || i >= d.count {
		panic(fmt.Sprintf("dataset: index %d out of range [0,%d)", i, d.count))
	}
	return d.at(i)
}

// ---------------------------------------------------------------------------
// Sources
// ---------------------------------------------------------------------------

// Query narrows a listing.
type Query struct {
	// Search matches case-insensitively against name and email. Empty
	// matches everything.
	Search string
}

func (q Query) matches(m Member) bool {
	if q.Search == "" {
		return true
	}
	needle := strings.ToLower(q.Search)
	return strings.Contains(strings.ToLower(m.Name), needle) ||
		strings.Contains(strings.ToLower(m.Email), needle)
}

// Source lists members. Every successful call returns a new snapshot, even
// when the rows are unchanged.
type Source interface {
	List(ctx context.Context, q Query) (Dataset, error)
}

// Memory serves a fixed slice of members.
type Memory struct {
	Members []Member
}

// List implements Source.
func (s *Memory) List(ctx context.Context, q Query) (Dataset, error) {
	if err := ctx.Err(); err != nil {
		return Dataset{}, err
	}
	if q.Search == "" {
		return FromSlice(s.Members), nil
	}
	var out []Member
	for _, m := range s.Members {
		if q.matches(m) {
			out = append(out, m)
		}
	}
	return FromSlice(out), nil
}

// checkEvery is how many rows a filtering scan processes between
// cancellation checks.
const checkEvery = 1 << 14

// Synthetic generates members on demand from their index, so a dataset of
// millions of rows costs no memory until rows are rendered.
type Synthetic struct {
	Count int
	Seed  string
}

// Member builds row i deterministically.
func (s Synthetic) Member(i int) Member {
	first := firstNames[i%len(firstNames)]
	last := lastNames[(i/len(firstNames))%len(lastNames)]
	tier := TierBasic
	switch {
	case i%17 == 0:
		tier = TierGold
	case i%5 == 0:
		tier = TierSilver
	}
	return Member{
		ID:       uuid.NewSHA1(uuid.NameSpaceOID, []byte(fmt.Sprintf("%s/%d", s.Seed, i))),
		Name:     fmt.Sprintf("%s %s", first, last),
		Email:    fmt.Sprintf("%s.%s%d@example.org", strings.ToLower(first), strings.ToLower(last), i),
		Tier:     tier,
		Joined:   baseDate.AddDate(0, 0, -(i % 3650)),
		DuesPaid: i%7 != 0,
	}
}

// List implements Source. An empty search serves the generator directly; a
// search scans every row once and keeps the matching indices.
func (s Synthetic) List(ctx context.Context, q Query) (Dataset, error) {
	if err := ctx.Err(); err != nil {
		return Dataset{}, err
	}
	if q.Search == "" {
		return New(s.Count, s.Member), nil
	}
	var idx []int
	for i := 0; i < s.Count; i++ {
		if i%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return Dataset{}, err
			}
		}
		if q.matches(s.Member(i)) {
			idx = append(idx, i)
		}
	}
	return New(len(idx), func(i int) Member { return s.Member(idx[i]) }), nil
}

var baseDate = time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

var firstNames = []string{
	"Aisyah", "Ben", "Chen", "Devi", "Elena", "Farid", "Grace", "Hafiz",
	"Irene", "Jun", "Kumar", "Lina", "Marcus", "Nurul", "Oscar", "Priya",
	"Qing", "Rahman", "Siti", "Tan", "Umar", "Vera", "Wei", "Yusuf", "Zara",
}

var lastNames = []string{
	"Abdullah", "Bakar", "Chong", "Das", "Ellis", "Fernandez", "Goh",
	"Hassan", "Ismail", "Jayaraman", "Khoo", "Lim", "Mohamed", "Ng",
	"Ong", "Pillai", "Rao", "Sim", "Teo", "Wong", "Yeo",
}
