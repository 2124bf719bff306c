package ticket

import (
	"fmt"
	"slices"
	"strings"
)

type SortKey string

const (
	SortByCreatedDate SortKey = "created_date"
	SortByPriority    SortKey = "priority"
	SortByStatus      SortKey = "status"
)

// ParseSortKey accepts an empty value as created_date.
func ParseSortKey(s string) (SortKey, error) {
	switch SortKey(s) {
	case "":
		return SortByCreatedDate, nil
	case SortByCreatedDate, SortByPriority, SortByStatus:
		return SortKey(s), nil
	default:
		return "", fmt.Errorf("invalid sort key: %s", s)
	}
}

// SortTickets orders tickets in place: created_date newest first, priority
// highest first, status ascending by name. Ties keep their input order.
func SortTickets(tickets []*Ticket, key SortKey) {
	switch key {
	case SortByPriority:
		slices.SortStableFunc(tickets, func(a, b *Ticket) int {
			return b.priority.Compare(a.priority)
		})
	case SortByStatus:
		slices.SortStableFunc(tickets, func(a, b *Ticket) int {
			return strings.Compare(a.status.String(), b.status.String())
		})
	default:
		slices.SortStableFunc(tickets, func(a, b *Ticket) int {
			return b.createdAt.Compare(a.createdAt)
		})
	}
}

// FilterTickets returns the tickets matching f, in input order.
func FilterTickets(tickets []*Ticket, f TicketFilter) []*Ticket {
	out := make([]*Ticket, 0, len(tickets))
	for _, t := range tickets {
		if t.Matches(f) {
			out = append(out, t)
		}
	}
	return out
}
