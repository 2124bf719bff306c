// Package rank describes the purchasable ranks shown on the store page.
package rank

// Tier is one purchasable rank. Description is markdown; DescriptionHTML is
// its sanitised rendering.
type Tier struct {
	ID              string   `json:"id" yaml:"id"`
	Name            string   `json:"name" yaml:"name"`
	Price           int      `json:"price" yaml:"price"`
	Color           string   `json:"color" yaml:"color"`
	Icon            string   `json:"icon" yaml:"icon"`
	Description     string   `json:"description" yaml:"description"`
	DescriptionHTML string   `json:"descriptionHtml" yaml:"-"`
	Features        []string `json:"features" yaml:"features"`
}

// Catalog lists tiers in display order.
type Catalog interface {
	List() []Tier
	Get(id string) (Tier, bool)
}
