package chat

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	vo "leafsmp/internal/domain/chat/valueobjects"
	"leafsmp/internal/shared/biztime"
)

// Field limits shared by request validation and the column widths.
const (
	MaxSenderNameLength = 100
	MaxMessageLength    = 5000
	MaxImageURLLength   = 512
)

// Message is one chat line on a ticket. Messages are never edited.
type Message struct {
	id         uint
	ticketID   uint
	sender     vo.Sender
	senderName string
	message    *string
	imageURL   *string
	createdAt  time.Time
}

// NewMessage validates the author. A message with neither text nor image is
// accepted; callers can check IsEmpty.
func NewMessage(
	ticketID uint,
	sender vo.Sender,
	senderName string,
	message *string,
	imageURL *string,
) (*Message, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if !sender.IsValid() {
		return nil, fmt.Errorf("invalid sender: %s", sender)
	}
	senderName = strings.TrimSpace(senderName)
	if senderName == "" {
		return nil, fmt.Errorf("sender name is required")
	}
	if utf8.RuneCountInString(senderName) > MaxSenderNameLength {
		return nil, fmt.Errorf("sender name exceeds maximum length of %d characters", MaxSenderNameLength)
	}
	if message != nil && utf8.RuneCountInString(*message) > MaxMessageLength {
		return nil, fmt.Errorf("message exceeds maximum length of %d characters", MaxMessageLength)
	}
	if imageURL != nil && utf8.RuneCountInString(*imageURL) > MaxImageURLLength {
		return nil, fmt.Errorf("image URL exceeds maximum length of %d characters", MaxImageURLLength)
	}

	return &Message{
		ticketID:   ticketID,
		sender:     sender,
		senderName: senderName,
		message:    nonEmpty(message),
		imageURL:   nonEmpty(imageURL),
		createdAt:  biztime.NowUTC().Truncate(time.Microsecond),
	}, nil
}

func ReconstructMessage(
	id uint,
	ticketID uint,
	sender vo.Sender,
	senderName string,
	message *string,
	imageURL *string,
	createdAt time.Time,
) (*Message, error) {
	if id == 0 {
		return nil, fmt.Errorf("message ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if !sender.IsValid() {
		return nil, fmt.Errorf("invalid sender: %s", sender)
	}

	return &Message{
		id:         id,
		ticketID:   ticketID,
		sender:     sender,
		senderName: senderName,
		message:    message,
		imageURL:   imageURL,
		createdAt:  createdAt.UTC(),
	}, nil
}

func nonEmpty(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	v := *s
	return &v
}

func (m *Message) ID() uint {
	return m.id
}

func (m *Message) TicketID() uint {
	return m.ticketID
}

func (m *Message) Sender() vo.Sender {
	return m.sender
}

func (m *Message) SenderName() string {
	return m.senderName
}

func (m *Message) Message() *string {
	return m.message
}

func (m *Message) ImageURL() *string {
	return m.imageURL
}

func (m *Message) CreatedAt() time.Time {
	return m.createdAt
}

func (m *Message) IsEmpty() bool {
	return m.message == nil && m.imageURL == nil
}

func (m *Message) SetID(id uint) error {
	if m.id != 0 {
		return fmt.Errorf("message ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("message ID cannot be zero")
	}
	m.id = id
	return nil
}

// SetCreatedAt lets a store order messages by its own clock at append time.
func (m *Message) SetCreatedAt(t time.Time) {
	m.createdAt = t.UTC()
}

func (m *Message) Clone() *Message {
	c := *m
	c.message = copyString(m.message)
	c.imageURL = copyString(m.imageURL)
	return &c
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
