package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leafsmp/internal/domain/ticket"
	vo "leafsmp/internal/domain/ticket/valueobjects"
	apperrors "leafsmp/internal/shared/errors"
)

func TestTicketRepository_SaveAndGet(t *testing.T) {
	for _, f := range ticketRepoFactories() {
		t.Run(f.name, func(t *testing.T) {
			repo := f.new(t)
			ctx := context.Background()

			first := saveTicket(t, repo, 1, "Steve", "steve#0001")
			second := saveTicket(t, repo, 2, "Alex", "alex#0002")

			assert.NotZero(t, first.ID())
			assert.Greater(t, second.ID(), first.ID())

			found, err := repo.GetByID(ctx, second.ID())
			require.NoError(t, err)
			assert.Equal(t, "LEAF-0002", found.Number())
			assert.Equal(t, "Alex", found.MinecraftUsername())
			assert.Equal(t, vo.StatusOpen, found.Status())
			assert.Equal(t, vo.PriorityNormal, found.Priority())
			assert.Equal(t, vo.CategoryRankPurchase, found.Category())
			assert.Nil(t, found.AdminNotes())
		})
	}
}

func TestTicketRepository_DuplicateNumberFails(t *testing.T) {
	for _, f := range ticketRepoFactories() {
		t.Run(f.name, func(t *testing.T) {
			repo := f.new(t)
			saveTicket(t, repo, 1, "Steve", "steve#0001")

			dup, err := ticket.NewTicket("Alex", "alex#0002", "master", "")
			require.NoError(t, err)
			require.NoError(t, dup.SetNumber("LEAF-0001"))

			assert.Error(t, repo.Save(context.Background(), dup))
		})
	}
}

func TestTicketRepository_GetByIDNotFound(t *testing.T) {
	for _, f := range ticketRepoFactories() {
		t.Run(f.name, func(t *testing.T) {
			repo := f.new(t)

			_, err := repo.GetByID(context.Background(), 999)
			require.Error(t, err)
			assert.True(t, apperrors.IsNotFoundError(err))
		})
	}
}

func TestTicketRepository_Update(t *testing.T) {
	for _, f := range ticketRepoFactories() {
		t.Run(f.name, func(t *testing.T) {
			repo := f.new(t)
			ctx := context.Background()
			saved := saveTicket(t, repo, 1, "Steve", "steve#0001")

			loaded, err := repo.GetByID(ctx, saved.ID())
			require.NoError(t, err)

			status := vo.StatusInProgress
			priority := vo.PriorityUrgent
			notes := "waiting on payment"
			require.NoError(t, loaded.ApplyUpdate(ticket.TicketUpdate{
				Status:     &status,
				Priority:   &priority,
				AdminNotes: &notes,
			}))
			require.NoError(t, repo.Update(ctx, loaded))

			reloaded, err := repo.GetByID(ctx, saved.ID())
			require.NoError(t, err)
			assert.Equal(t, vo.StatusInProgress, reloaded.Status())
			assert.Equal(t, vo.PriorityUrgent, reloaded.Priority())
			require.NotNil(t, reloaded.AdminNotes())
			assert.Equal(t, notes, *reloaded.AdminNotes())
			assert.Equal(t, "Steve", reloaded.MinecraftUsername())
			assert.True(t, reloaded.UpdatedAt().After(saved.UpdatedAt()))
		})
	}
}

func TestTicketRepository_UpdateUnknownTicket(t *testing.T) {
	for _, f := range ticketRepoFactories() {
		t.Run(f.name, func(t *testing.T) {
			repo := f.new(t)
			saveTicket(t, repo, 1, "Alex", "alex#0002")

			now := time.Now()
			ghost, err := ticket.ReconstructTicket(42, "LEAF-0042", "Steve", "steve#0001", "ninja",
				vo.StatusOpen, vo.PriorityNormal, vo.CategoryRankPurchase, nil, now, now)
			require.NoError(t, err)

			err = repo.Update(context.Background(), ghost)
			require.Error(t, err)
			assert.True(t, apperrors.IsNotFoundError(err))
		})
	}
}

func TestTicketRepository_StoreIsolation(t *testing.T) {
	repo := NewMemoryTicketRepository()
	ctx := context.Background()
	saved := saveTicket(t, repo, 1, "Steve", "steve#0001")

	status := vo.StatusClosed
	require.NoError(t, saved.ApplyUpdate(ticket.TicketUpdate{Status: &status}))

	stored, err := repo.GetByID(ctx, saved.ID())
	require.NoError(t, err)
	assert.Equal(t, vo.StatusOpen, stored.Status())
}

func TestTicketRepository_FindByIdentity(t *testing.T) {
	for _, f := range ticketRepoFactories() {
		t.Run(f.name, func(t *testing.T) {
			repo := f.new(t)
			ctx := context.Background()

			saveTicket(t, repo, 1, "Steve", "steve#0001")
			saveTicket(t, repo, 2, "Alex", "alex#0002")
			saveTicket(t, repo, 3, "Steve", "steve#0001")
			saveTicket(t, repo, 4, "steve", "steve#0001")

			found, err := repo.FindByIdentity(ctx, "Steve", "steve#0001")
			require.NoError(t, err)
			require.Len(t, found, 2)
			assert.Equal(t, "LEAF-0001", found[0].Number())
			assert.Equal(t, "LEAF-0003", found[1].Number())

			none, err := repo.FindByIdentity(ctx, "Steve", "alex#0002")
			require.NoError(t, err)
			assert.NotNil(t, none)
			assert.Empty(t, none)
		})
	}
}

func TestTicketRepository_List(t *testing.T) {
	for _, f := range ticketRepoFactories() {
		t.Run(f.name, func(t *testing.T) {
			repo := f.new(t)
			ctx := context.Background()

			low := saveTicket(t, repo, 1, "A", "a#1")
			urgent := saveTicket(t, repo, 2, "B", "b#2")
			saveTicket(t, repo, 3, "C", "c#3")

			for tk, p := range map[*ticket.Ticket]vo.Priority{low: vo.PriorityLow, urgent: vo.PriorityUrgent} {
				p := p
				require.NoError(t, tk.ApplyUpdate(ticket.TicketUpdate{Priority: &p}))
				require.NoError(t, repo.Update(ctx, tk))
			}

			byPriority, err := repo.List(ctx, ticket.TicketFilter{SortBy: ticket.SortByPriority})
			require.NoError(t, err)
			require.Len(t, byPriority, 3)
			assert.Equal(t, []string{"LEAF-0002", "LEAF-0003", "LEAF-0001"}, numbers(byPriority))

			newest, err := repo.List(ctx, ticket.TicketFilter{})
			require.NoError(t, err)
			assert.ElementsMatch(t, []string{"LEAF-0001", "LEAF-0002", "LEAF-0003"}, numbers(newest))
			for i := 1; i < len(newest); i++ {
				assert.False(t, newest[i].CreatedAt().After(newest[i-1].CreatedAt()))
			}

			p := vo.PriorityUrgent
			filtered, err := repo.List(ctx, ticket.TicketFilter{Priority: &p})
			require.NoError(t, err)
			assert.Equal(t, []string{"LEAF-0002"}, numbers(filtered))

			s := vo.StatusClosed
			empty, err := repo.List(ctx, ticket.TicketFilter{Status: &s})
			require.NoError(t, err)
			assert.Empty(t, empty)
		})
	}
}

func TestTicketRepository_CountsAndSequence(t *testing.T) {
	for _, f := range ticketRepoFactories() {
		t.Run(f.name, func(t *testing.T) {
			repo := f.new(t)
			ctx := context.Background()

			last, err := repo.LastSequence(ctx)
			require.NoError(t, err)
			assert.Zero(t, last)

			saveTicket(t, repo, 1, "A", "a#1")
			closed := saveTicket(t, repo, 7, "B", "b#2")
			s := vo.StatusClosed
			require.NoError(t, closed.ApplyUpdate(ticket.TicketUpdate{Status: &s}))
			require.NoError(t, repo.Update(ctx, closed))

			last, err = repo.LastSequence(ctx)
			require.NoError(t, err)
			assert.Equal(t, int64(7), last)

			counts, err := repo.CountByStatus(ctx)
			require.NoError(t, err)
			assert.Equal(t, int64(1), counts[vo.StatusOpen])
			assert.Equal(t, int64(0), counts[vo.StatusInProgress])
			assert.Equal(t, int64(1), counts[vo.StatusClosed])
		})
	}
}

func TestMemoryTicketRepository_ConcurrentSaves(t *testing.T) {
	repo := NewMemoryTicketRepository()
	ctx := context.Background()

	const n = 50
	var wg sync.WaitGroup
	for i := 1; i <= n; i++ {
		wg.Add(1)
		go func(seq int) {
			defer wg.Done()
			tk, err := ticket.NewTicket(fmt.Sprintf("player%d", seq), "d#1", "ninja", "")
			if !assert.NoError(t, err) {
				return
			}
			_ = tk.SetNumber(ticket.FormatNumber("LEAF", int64(seq)))
			assert.NoError(t, repo.Save(ctx, tk))
		}(i)
	}
	wg.Wait()

	all, err := repo.List(ctx, ticket.TicketFilter{})
	require.NoError(t, err)
	assert.Len(t, all, n)

	ids := make(map[uint]bool, n)
	for _, tk := range all {
		assert.False(t, ids[tk.ID()], "duplicate id %d", tk.ID())
		ids[tk.ID()] = true
	}
}

func numbers(tickets []*ticket.Ticket) []string {
	out := make([]string, len(tickets))
	for i, tk := range tickets {
		out[i] = tk.Number()
	}
	return out
}
