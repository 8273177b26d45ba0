package item

import (
	"github.com/google/uuid"

	"github.com/gtnlabs/gtn/internal/shared/domain"
)

// EventNameRecordCreated identifies record creation events.
const EventNameRecordCreated = "record.created"

// RecordCreated is emitted when any record variant is constructed.
type RecordCreated struct {
	domain.BaseEvent
	RecordKind  Kind
	RecordTitle string
}

// NewRecordCreated creates a RecordCreated event.
func NewRecordCreated(recordID uuid.UUID, kind Kind, title string) RecordCreated {
	return RecordCreated{
		BaseEvent:   domain.NewBaseEvent(recordID, kind.Family().String(), EventNameRecordCreated),
		RecordKind:  kind,
		RecordTitle: title,
	}
}
