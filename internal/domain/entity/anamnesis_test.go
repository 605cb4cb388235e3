package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestAnamnesisLinkAfter_EmptyChain(t *testing.T) {
	record := &Anamnesis{}
	record.LinkAfter(nil)

	assert.Equal(t, 1, record.Version)
	assert.Nil(t, record.PreviousVersionID)
}

func TestAnamnesisLinkAfter_AppendsToChain(t *testing.T) {
	first := &Anamnesis{ID: uuid.New(), Version: 1}

	second := &Anamnesis{ID: uuid.New()}
	second.LinkAfter(first)
	assert.Equal(t, 2, second.Version)
	assert.Equal(t, first.ID, *second.PreviousVersionID)

	third := &Anamnesis{}
	third.LinkAfter(second)
	assert.Equal(t, 3, third.Version)
	assert.Equal(t, second.ID, *third.PreviousVersionID)

	// Predecessors keep their links.
	assert.Equal(t, 1, first.Version)
	assert.Equal(t, 2, second.Version)
	assert.Equal(t, first.ID, *second.PreviousVersionID)
}

func TestAnamnesisFinalize(t *testing.T) {
	record := &Anamnesis{Status: AnamnesisStatusDraft}
	assert.True(t, record.IsDraft())

	record.Finalize()
	assert.False(t, record.IsDraft())
	assert.Equal(t, AnamnesisStatusFinalized, record.Status)
}
