package dataset

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// memberRecord is the on-disk shape of a Member.
type memberRecord struct {
	ID       string    `yaml:"id,omitempty"`
	Name     string    `yaml:"name"`
	Email    string    `yaml:"email"`
	Tier     Tier      `yaml:"tier,omitempty"`
	Joined   time.Time `yaml:"joined,omitempty"`
	DuesPaid bool      `yaml:"dues_paid"`
}

type memberFile struct {
	Members []memberRecord `yaml:"members"`
}

// DecodeMembers reads a members document:
//
//	members:
//	  - id: 6f1c...     # optional, generated when absent
//	    name: Ada Lovelace
//	    email: ada@example.org
//	    tier: gold
//	    joined: 2024-03-01T00:00:00Z
//	    dues_paid: true
func DecodeMembers(r io.Reader) (*Memory, error) {
	var f memberFile
	if err := yaml.NewDecoder(r).Decode(&f); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decoding members: %w", err)
	}
	out := make([]Member, 0, len(f.Members))
	for i, rec := range f.Members {
		m := Member{
			Name:     rec.Name,
			Email:    rec.Email,
			Tier:     rec.Tier,
			Joined:   rec.Joined,
			DuesPaid: rec.DuesPaid,
		}
		if m.Tier == "" {
			m.Tier = TierBasic
		}
		switch m.Tier {
		case TierBasic, TierSilver, TierGold:
		default:
			return nil, fmt.Errorf("member %d: unknown tier %q", i, rec.Tier)
		}
		if rec.ID == "" {
			m.ID = uuid.New()
		} else {
			id, err := uuid.Parse(rec.ID)
			if err != nil {
				return nil, fmt.Errorf("member %d: %w", i, err)
			}
			m.ID = id
		}
		out = append(out, m)
	}
	return &Memory{Members: out}, nil
}

// LoadMembers reads a members document from path.
func LoadMembers(path string) (*Memory, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return DecodeMembers(f)
}

// EncodeMembers writes members in the format DecodeMembers reads.
func EncodeMembers(w io.Writer, members []Member) error {
	f := memberFile{Members: make([]memberRecord, len(members))}
	for i, m := range members {
		f.Members[i] = memberRecord{
			ID:       m.ID.String(),
			Name:     m.Name,
			Email:    m.Email,
			Tier:     m.Tier,
			Joined:   m.Joined,
			DuesPaid: m.DuesPaid,
		}
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		return err
	}
	return enc.Close()
}
