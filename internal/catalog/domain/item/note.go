package item

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gtnlabs/gtn/internal/shared/domain"
)

// Note is a free-text record with an ordered tag list. Protected notes
// additionally carry a plain-text password compared by exact match.
type Note struct {
	domain.BaseAggregateRoot
	kind        Kind
	title       string
	description string
	tags        []string
	password    string
}

// NewNote creates a generic note. Tags are stored as given, duplicates
// and all; normalizing empty tags is the loader's job.
func NewNote(title, description string, tags []string) (*Note, error) {
	return newNote(KindNote, title, description, tags, "")
}

// NewProtectedNote creates a note whose details are gated by a password.
func NewProtectedNote(title, description string, tags []string, password string) (*Note, error) {
	return newNote(KindProtectedNote, title, description, tags, password)
}

// NewPublicNote creates a note distinguished from a generic one only by
// its kind tag.
func NewPublicNote(title, description string, tags []string) (*Note, error) {
	return newNote(KindPublicNote, title, description, tags, "")
}

func newNote(kind Kind, title, description string, tags []string, password string) (*Note, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}

	n := &Note{
		BaseAggregateRoot: domain.NewBaseAggregateRoot(),
		kind:              kind,
		title:             title,
		description:       description,
		tags:              append([]string(nil), tags...),
		password:          password,
	}
	n.AddDomainEvent(NewRecordCreated(n.ID(), kind, title))
	return n, nil
}

// RehydrateNote recreates a note from persisted state without
// generating events. Kind must be a note-family kind.
func RehydrateNote(id uuid.UUID, createdAt time.Time, kind Kind,
	title, description string, tags []string, password string) *Note {
	return &Note{
		BaseAggregateRoot: domain.RehydrateBaseAggregateRoot(domain.RehydrateBaseEntity(id, createdAt)),
		kind:              kind,
		title:             title,
		description:       description,
		tags:              append([]string(nil), tags...),
		password:          password,
	}
}

func (n *Note) Kind() Kind          { return n.kind }
func (n *Note) Title() string       { return n.title }
func (n *Note) Description() string { return n.description }

// Tags returns the tag list in stored order.
func (n *Note) Tags() []string { return append([]string(nil), n.tags...) }

// HasTag reports whether tag appears in the note's tag list. The match
// is exact and case-sensitive.
func (n *Note) HasTag(tag string) bool {
	for _, t := range n.tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Password returns the stored password; empty for unprotected kinds.
// Needed by persistence, which round-trips records verbatim.
func (n *Note) Password() string { return n.password }

// CheckPassword reports whether the supplied password grants access to a
// protected note. Unprotected kinds are always accessible.
func (n *Note) CheckPassword(password string) bool {
	if n.kind != KindProtectedNote {
		return true
	}
	return password == n.password
}

// Summary renders the one-line listing for the note variant. Protected
// notes hide their tags.
func (n *Note) Summary() string {
	switch n.kind {
	case KindProtectedNote:
		return "Protected Note: " + n.title + " [Protected]"
	case KindPublicNote:
		return "Public Note: " + n.title + " [Tags: " + strings.Join(n.tags, " ") + "]"
	default:
		return "Note: " + n.title + " [Tags: " + strings.Join(n.tags, " ") + "]"
	}
}

// Details renders the multi-line view; the protected variant extends the
// base note block by explicit composition.
func (n *Note) Details() string {
	base := "Title: " + n.title + "\nDescription: " + n.description +
		"\nTags: " + strings.Join(n.tags, ", ")
	if n.kind == KindProtectedNote {
		return base + "\nPassword Protected"
	}
	return base
}
