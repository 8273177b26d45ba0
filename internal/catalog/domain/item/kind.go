package item

import "fmt"

// Kind identifies the concrete variant of a record. The set is closed:
// every record carries exactly one of these tags for its whole lifetime.
type Kind int

const (
	KindTask Kind = iota
	KindRecurringTask
	KindOneTimeTask
	KindNote
	KindProtectedNote
	KindPublicNote
	KindGoal
	KindQuantifiableGoal
	KindNonQuantifiableGoal
)

// Family groups kinds into the three record families.
type Family int

const (
	FamilyTask Family = iota
	FamilyNote
	FamilyGoal
)

func (k Kind) String() string {
	switch k {
	case KindTask:
		return "Task"
	case KindRecurringTask:
		return "RecurringTask"
	case KindOneTimeTask:
		return "OneTimeTask"
	case KindNote:
		return "Note"
	case KindProtectedNote:
		return "ProtectedNote"
	case KindPublicNote:
		return "PublicNote"
	case KindGoal:
		return "Goal"
	case KindQuantifiableGoal:
		return "QuantifiableGoal"
	case KindNonQuantifiableGoal:
		return "NonQuantifiableGoal"
	default:
		return "unknown"
	}
}

// Family returns the record family a kind belongs to.
func (k Kind) Family() Family {
	switch k {
	case KindTask, KindRecurringTask, KindOneTimeTask:
		return FamilyTask
	case KindNote, KindProtectedNote, KindPublicNote:
		return FamilyNote
	default:
		return FamilyGoal
	}
}

func (f Family) String() string {
	switch f {
	case FamilyTask:
		return "task"
	case FamilyNote:
		return "note"
	default:
		return "goal"
	}
}

// ParseKind maps a persisted type tag to its Kind.
func ParseKind(tag string) (Kind, error) {
	switch tag {
	case "Task":
		return KindTask, nil
	case "RecurringTask":
		return KindRecurringTask, nil
	case "OneTimeTask":
		return KindOneTimeTask, nil
	case "Note":
		return KindNote, nil
	case "ProtectedNote":
		return KindProtectedNote, nil
	case "PublicNote":
		return KindPublicNote, nil
	case "Goal":
		return KindGoal, nil
	case "QuantifiableGoal":
		return KindQuantifiableGoal, nil
	case "NonQuantifiableGoal":
		return KindNonQuantifiableGoal, nil
	default:
		return 0, fmt.Errorf("unknown record kind %q", tag)
	}
}
