package rank

import (
	"github.com/gin-gonic/gin"

	"leafsmp/internal/domain/rank"
	"leafsmp/internal/shared/utils"
)

type RankHandler struct {
	catalog rank.Catalog
}

func NewRankHandler(catalog rank.Catalog) *RankHandler {
	return &RankHandler{catalog: catalog}
}

// ListRanks handles GET /api/ranks
// @Summary List store ranks
// @Description Purchasable rank tiers in display order with rendered descriptions
// @Tags store
// @Produce json
// @Success 200 {array} rank.Tier
// @Router /api/ranks [get]
func (h *RankHandler) ListRanks(c *gin.Context) {
	utils.OKResponse(c, h.catalog.List())
}
