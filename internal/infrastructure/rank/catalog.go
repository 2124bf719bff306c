package rank

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"leafsmp/internal/domain/rank"
	"leafsmp/internal/shared/services/markdown"
)

//go:embed ranks.yaml
var defaultRanks []byte

// StaticCatalog is a read-only rank list loaded once at startup.
type StaticCatalog struct {
	tiers []rank.Tier
	byID  map[string]int
}

var _ rank.Catalog = (*StaticCatalog)(nil)

// NewDefaultCatalog loads the built-in rank list.
func NewDefaultCatalog(md markdown.MarkdownService) (*StaticCatalog, error) {
	return LoadCatalog(defaultRanks, md)
}

// LoadCatalog parses a YAML list of tiers and renders each description.
func LoadCatalog(data []byte, md markdown.MarkdownService) (*StaticCatalog, error) {
	var tiers []rank.Tier
	if err := yaml.Unmarshal(data, &tiers); err != nil {
		return nil, fmt.Errorf("failed to parse rank catalog: %w", err)
	}

	c := &StaticCatalog{
		tiers: make([]rank.Tier, 0, len(tiers)),
		byID:  make(map[string]int, len(tiers)),
	}
	for _, tier := range tiers {
		tier.ID = strings.TrimSpace(tier.ID)
		if tier.ID == "" {
			return nil, fmt.Errorf("rank %q has no id", tier.Name)
		}
		if _, dup := c.byID[tier.ID]; dup {
			return nil, fmt.Errorf("duplicate rank id %q", tier.ID)
		}

		rendered, err := md.ToHTMLSanitized(tier.Description)
		if err != nil {
			return nil, fmt.Errorf("failed to render description of rank %q: %w", tier.ID, err)
		}
		tier.DescriptionHTML = rendered
		if tier.Features == nil {
			tier.Features = []string{}
		}

		c.byID[tier.ID] = len(c.tiers)
		c.tiers = append(c.tiers, tier)
	}
	return c, nil
}

func (c *StaticCatalog) List() []rank.Tier {
	out := make([]rank.Tier, len(c.tiers))
	for i, tier := range c.tiers {
		tier.Features = append([]string(nil), tier.Features...)
		out[i] = tier
	}
	return out
}

func (c *StaticCatalog) Get(id string) (rank.Tier, bool) {
	i, ok := c.byID[id]
	if !ok {
		return rank.Tier{}, false
	}
	tier := c.tiers[i]
	tier.Features = append([]string(nil), tier.Features...)
	return tier, true
}
