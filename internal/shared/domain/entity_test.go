package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBaseEntity(t *testing.T) {
	e := NewBaseEntity()

	assert.NotEqual(t, uuid.Nil, e.ID())
	assert.False(t, e.CreatedAt().IsZero())
	assert.Equal(t, time.UTC, e.CreatedAt().Location())
}

func TestRehydrateBaseEntity(t *testing.T) {
	id := uuid.New()
	createdAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	e := RehydrateBaseEntity(id, createdAt)

	assert.Equal(t, id, e.ID())
	assert.Equal(t, createdAt, e.CreatedAt())
}

func TestBaseEntity_Equals(t *testing.T) {
	a := NewBaseEntity()
	b := NewBaseEntity()

	assert.True(t, a.Equals(a))
	assert.False(t, a.Equals(b))
	assert.False(t, a.Equals(nil))

	same := RehydrateBaseEntity(a.ID(), time.Now().UTC())
	assert.True(t, a.Equals(same))
}

func TestBaseAggregateRoot_Events(t *testing.T) {
	root := NewBaseAggregateRoot()
	require.Empty(t, root.DomainEvents())

	evt := NewBaseEvent(root.ID(), "record", "record.created")
	root.AddDomainEvent(evt)

	events := root.DomainEvents()
	require.Len(t, events, 1)
	assert.Equal(t, root.ID(), events[0].AggregateID())
	assert.Equal(t, "record", events[0].AggregateType())
	assert.Equal(t, "record.created", events[0].EventName())
	assert.NotEqual(t, uuid.Nil, events[0].EventID())
	assert.False(t, events[0].OccurredAt().IsZero())

	root.ClearDomainEvents()
	assert.Empty(t, root.DomainEvents())
}
