package ticket

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	vo "leafsmp/internal/domain/ticket/valueobjects"
	"leafsmp/internal/shared/biztime"
)

// Field limits shared by request validation and the column widths.
const (
	MaxIdentityLength     = 100
	MaxSelectedRankLength = 64
	MaxAdminNotesLength   = 5000
)

// clock is swapped in tests that need a frozen wall clock.
var clock biztime.Clock = biztime.NowUTC

// Ticket is a rank purchase or support request raised by a player.
type Ticket struct {
	id                uint
	number            string
	minecraftUsername string
	discordUsername   string
	selectedRank      string
	status            vo.TicketStatus
	priority          vo.Priority
	category          vo.Category
	adminNotes        *string
	createdAt         time.Time
	updatedAt         time.Time
}

// TicketUpdate is a partial staff edit. Nil fields are left untouched.
type TicketUpdate struct {
	Status     *vo.TicketStatus
	Priority   *vo.Priority
	AdminNotes *string
}

func (u TicketUpdate) IsEmpty() bool {
	return u.Status == nil && u.Priority == nil && u.AdminNotes == nil
}

// NewTicket opens a ticket with status open and priority normal. An empty
// category defaults to rank_purchase.
func NewTicket(
	minecraftUsername string,
	discordUsername string,
	selectedRank string,
	category vo.Category,
) (*Ticket, error) {
	minecraftUsername = strings.TrimSpace(minecraftUsername)
	discordUsername = strings.TrimSpace(discordUsername)
	selectedRank = strings.TrimSpace(selectedRank)

	if minecraftUsername == "" {
		return nil, fmt.Errorf("minecraft username is required")
	}
	if utf8.RuneCountInString(minecraftUsername) > MaxIdentityLength {
		return nil, fmt.Errorf("minecraft username exceeds maximum length of %d characters", MaxIdentityLength)
	}
	if discordUsername == "" {
		return nil, fmt.Errorf("discord username is required")
	}
	if utf8.RuneCountInString(discordUsername) > MaxIdentityLength {
		return nil, fmt.Errorf("discord username exceeds maximum length of %d characters", MaxIdentityLength)
	}
	if selectedRank == "" {
		return nil, fmt.Errorf("selected rank is required")
	}
	if utf8.RuneCountInString(selectedRank) > MaxSelectedRankLength {
		return nil, fmt.Errorf("selected rank exceeds maximum length of %d characters", MaxSelectedRankLength)
	}
	if category == "" {
		category = vo.CategoryRankPurchase
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("invalid category")
	}

	now := clock().UTC().Truncate(time.Microsecond)
	return &Ticket{
		minecraftUsername: minecraftUsername,
		discordUsername:   discordUsername,
		selectedRank:      selectedRank,
		status:            vo.StatusOpen,
		priority:          vo.PriorityNormal,
		category:          category,
		createdAt:         now,
		updatedAt:         now,
	}, nil
}

// ReconstructTicket rebuilds a persisted ticket without applying defaults.
func ReconstructTicket(
	id uint,
	number string,
	minecraftUsername string,
	discordUsername string,
	selectedRank string,
	status vo.TicketStatus,
	priority vo.Priority,
	category vo.Category,
	adminNotes *string,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if number == "" {
		return nil, fmt.Errorf("ticket number is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("invalid category")
	}

	return &Ticket{
		id:                id,
		number:            number,
		minecraftUsername: minecraftUsername,
		discordUsername:   discordUsername,
		selectedRank:      selectedRank,
		status:            status,
		priority:          priority,
		category:          category,
		adminNotes:        adminNotes,
		createdAt:         createdAt.UTC(),
		updatedAt:         updatedAt.UTC(),
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) Number() string {
	return t.number
}

func (t *Ticket) MinecraftUsername() string {
	return t.minecraftUsername
}

func (t *Ticket) DiscordUsername() string {
	return t.discordUsername
}

func (t *Ticket) SelectedRank() string {
	return t.selectedRank
}

func (t *Ticket) Status() vo.TicketStatus {
	return t.status
}

func (t *Ticket) Priority() vo.Priority {
	return t.priority
}

func (t *Ticket) Category() vo.Category {
	return t.category
}

func (t *Ticket) AdminNotes() *string {
	if t.adminNotes == nil {
		return nil
	}
	notes := *t.adminNotes
	return &notes
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

func (t *Ticket) SetNumber(number string) error {
	if t.number != "" {
		return fmt.Errorf("ticket number is already set")
	}
	if number == "" {
		return fmt.Errorf("ticket number cannot be empty")
	}
	t.number = number
	return nil
}

// OwnedBy reports an exact, case-sensitive match on both identity fields.
func (t *Ticket) OwnedBy(minecraftUsername, discordUsername string) bool {
	return t.minecraftUsername == minecraftUsername && t.discordUsername == discordUsername
}

// ApplyUpdate merges the non-nil fields of u and moves updatedAt strictly
// forward. Nothing is changed when u carries an invalid value.
func (t *Ticket) ApplyUpdate(u TicketUpdate) error {
	if u.Status != nil && !u.Status.IsValid() {
		return fmt.Errorf("invalid ticket status: %s", *u.Status)
	}
	if u.Priority != nil && !u.Priority.IsValid() {
		return fmt.Errorf("invalid priority: %s", *u.Priority)
	}
	if u.AdminNotes != nil && utf8.RuneCountInString(*u.AdminNotes) > MaxAdminNotesLength {
		return fmt.Errorf("admin notes exceed maximum length of %d characters", MaxAdminNotesLength)
	}

	if u.Status != nil {
		t.status = *u.Status
	}
	if u.Priority != nil {
		t.priority = *u.Priority
	}
	if u.AdminNotes != nil {
		notes := *u.AdminNotes
		t.adminNotes = &notes
	}
	t.updatedAt = biztime.After(t.updatedAt, clock)
	return nil
}

// Matches reports whether t passes the status and priority parts of f.
func (t *Ticket) Matches(f TicketFilter) bool {
	if f.Status != nil && t.status != *f.Status {
		return false
	}
	if f.Priority != nil && t.priority != *f.Priority {
		return false
	}
	return true
}

// Clone returns a deep copy, so stores never hand out their own pointers.
func (t *Ticket) Clone() *Ticket {
	c := *t
	c.adminNotes = t.AdminNotes()
	return &c
}
