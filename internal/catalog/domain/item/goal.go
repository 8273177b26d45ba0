package item

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gtnlabs/gtn/internal/shared/domain"
)

// Goal is a record with a progress measurement. Generic and quantifiable
// goals score their stored fraction; non-quantifiable goals always score
// the sentinel no matter what fraction they were constructed with.
type Goal struct {
	domain.BaseAggregateRoot
	kind        Kind
	title       string
	description string
	progress    Progress
}

// NewGoal creates a generic goal with a measurable fraction.
func NewGoal(title, description string, fraction float64) (*Goal, error) {
	return newGoal(KindGoal, title, description, QuantifiedProgress(fraction))
}

// NewQuantifiableGoal creates a goal whose progress is a real
// measurement, returned verbatim. The fraction is stored as given; a
// value of exactly ProgressSentinel stays verbatim and will sort like a
// non-quantifiable goal.
func NewQuantifiableGoal(title, description string, fraction float64) (*Goal, error) {
	return newGoal(KindQuantifiableGoal, title, description, QuantifiedProgress(fraction))
}

// NewNonQuantifiableGoal creates a goal whose progress is not
// measurable. The stored fraction only feeds the detail view.
func NewNonQuantifiableGoal(title, description string, stored float64) (*Goal, error) {
	return newGoal(KindNonQuantifiableGoal, title, description, UnquantifiedProgress(stored))
}

func newGoal(kind Kind, title, description string, progress Progress) (*Goal, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}

	g := &Goal{
		BaseAggregateRoot: domain.NewBaseAggregateRoot(),
		kind:              kind,
		title:             title,
		description:       description,
		progress:          progress,
	}
	g.AddDomainEvent(NewRecordCreated(g.ID(), kind, title))
	return g, nil
}

// RehydrateGoal recreates a goal from persisted state without
// generating events. Kind must be a goal-family kind; the progress
// variant follows from the kind.
func RehydrateGoal(id uuid.UUID, createdAt time.Time, kind Kind,
	title, description string, fraction float64) *Goal {
	progress := QuantifiedProgress(fraction)
	if kind == KindNonQuantifiableGoal {
		progress = UnquantifiedProgress(fraction)
	}
	return &Goal{
		BaseAggregateRoot: domain.RehydrateBaseAggregateRoot(domain.RehydrateBaseEntity(id, createdAt)),
		kind:              kind,
		title:             title,
		description:       description,
		progress:          progress,
	}
}

func (g *Goal) Kind() Kind          { return g.kind }
func (g *Goal) Title() string       { return g.title }
func (g *Goal) Description() string { return g.description }

// ProgressValue returns the underlying optional progress.
func (g *Goal) ProgressValue() Progress { return g.progress }

// Progress returns the ordering score: the stored fraction, or
// ProgressSentinel for non-quantifiable goals.
func (g *Goal) Progress() float64 { return g.progress.Score() }

// Summary renders the one-line listing for the goal variant.
func (g *Goal) Summary() string {
	switch g.kind {
	case KindQuantifiableGoal:
		return fmt.Sprintf("Quantifiable Goal: %s, Progress: %.0f%%", g.title, g.progress.Fraction()*100)
	case KindNonQuantifiableGoal:
		return fmt.Sprintf("Non-Quantifiable Goal: %s - Progress not quantified.", g.title)
	default:
		return fmt.Sprintf("Goal: %s, Progress: %.0f%%", g.title, g.progress.Fraction()*100)
	}
}

// Details renders the multi-line view. The percentage is truncated, not
// rounded, matching the summary/detail asymmetry users already rely on.
func (g *Goal) Details() string {
	base := fmt.Sprintf("Title: %s\nDescription: %s\nProgress: %d%%",
		g.title, g.description, int(g.progress.Fraction()*100))
	if g.kind == KindNonQuantifiableGoal {
		return base + "\nNon-quantifiable progress"
	}
	return base
}
