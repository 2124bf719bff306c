package valueobjects

import "fmt"

// Sender says which side of a ticket wrote a message.
type Sender string

const (
	SenderUser  Sender = "user"
	SenderAdmin Sender = "admin"
)

func (s Sender) String() string {
	return string(s)
}

func (s Sender) IsValid() bool {
	return s == SenderUser || s == SenderAdmin
}

func (s Sender) IsAdmin() bool {
	return s == SenderAdmin
}

func NewSender(s string) (Sender, error) {
	sender := Sender(s)
	if !sender.IsValid() {
		return "", fmt.Errorf("invalid sender: %s", s)
	}
	return sender, nil
}
