package mappers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leafsmp/internal/domain/ticket"
	vo "leafsmp/internal/domain/ticket/valueobjects"
	"leafsmp/internal/infrastructure/persistence/models"
)

func TestTicketMapper_KeepsMicroseconds(t *testing.T) {
	created := time.Date(2024, 5, 1, 12, 0, 0, 123456000, time.UTC)
	notes := "paid via store"
	tk, err := ticket.ReconstructTicket(7, "LEAF-0042", "Steve", "steve#1", "ninja",
		vo.StatusInProgress, vo.PriorityHigh, vo.CategoryRankPurchase, &notes,
		created, created.Add(time.Microsecond))
	require.NoError(t, err)

	mapper := NewTicketMapper()
	model, err := mapper.ToModel(tk)
	require.NoError(t, err)
	assert.Equal(t, int64(42), model.Sequence)
	assert.Equal(t, "in_progress", model.Status)

	back, err := mapper.ToDomain(model)
	require.NoError(t, err)
	assert.True(t, back.CreatedAt().Equal(created))
	assert.True(t, back.UpdatedAt().After(back.CreatedAt()))
	require.NotNil(t, back.AdminNotes())
	assert.Equal(t, notes, *back.AdminNotes())
}

func TestTicketMapper_RejectsCorruptRows(t *testing.T) {
	mapper := NewTicketMapper()
	_, err := mapper.ToDomain(&models.TicketModel{
		ID:       1,
		Number:   "LEAF-0001",
		Status:   "archived",
		Priority: "normal",
		Category: "rank_purchase",
	})
	assert.Error(t, err)
}
