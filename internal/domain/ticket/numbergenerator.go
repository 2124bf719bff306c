package ticket

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
)

const DefaultNumberPrefix = "LEAF"

type NumberGenerator interface {
	Generate(ctx context.Context) (string, error)
}

// SequentialNumberGenerator issues <prefix>-0001, <prefix>-0002, ... The
// sequence is independent of ticket ids and never repeats within a process.
type SequentialNumberGenerator struct {
	mu     sync.Mutex
	prefix string
	last   int64
}

func NewSequentialNumberGenerator(prefix string) *SequentialNumberGenerator {
	if prefix == "" {
		prefix = DefaultNumberPrefix
	}
	return &SequentialNumberGenerator{prefix: prefix}
}

func (g *SequentialNumberGenerator) Generate(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.last++
	return FormatNumber(g.prefix, g.last), nil
}

// Seed continues numbering after last. A lower value than the current
// sequence is ignored.
func (g *SequentialNumberGenerator) Seed(last int64) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if last > g.last {
		g.last = last
	}
}

// FormatNumber pads to four digits; larger sequences keep all their digits.
func FormatNumber(prefix string, seq int64) string {
	return fmt.Sprintf("%s-%04d", prefix, seq)
}

// ParseSequence extracts the numeric suffix of a ticket number.
func ParseSequence(number string) (int64, error) {
	idx := strings.LastIndex(number, "-")
	if idx < 0 || idx == len(number)-1 {
		return 0, fmt.Errorf("malformed ticket number %q", number)
	}
	seq, err := strconv.ParseInt(number[idx+1:], 10, 64)
	if err != nil || seq <= 0 {
		return 0, fmt.Errorf("malformed ticket number %q", number)
	}
	return seq, nil
}
