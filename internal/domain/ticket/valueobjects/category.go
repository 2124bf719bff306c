package valueobjects

import (
	"fmt"
	"strings"
)

// Category is free text; rank purchases are the only kind the site opens
// itself.
type Category string

const (
	CategoryRankPurchase Category = "rank_purchase"

	maxCategoryLength = 64
)

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	trimmed := strings.TrimSpace(string(c))
	return trimmed != "" && len(trimmed) <= maxCategoryLength
}

func (c Category) IsRankPurchase() bool {
	return c == CategoryRankPurchase
}

func NewCategory(s string) (Category, error) {
	c := Category(strings.TrimSpace(s))
	if !c.IsValid() {
		return "", fmt.Errorf("invalid category: %q", s)
	}
	return c, nil
}
