package handlers

import (
	"net/http"

	"dcf-valuation/internal/api/models"
	"dcf-valuation/internal/config"

	"github.com/gin-gonic/gin"
)

// PresetHandler serves the example input presets
type PresetHandler struct {
	presets *config.PresetSet
}

// NewPresetHandler creates a new preset handler
func NewPresetHandler(presets *config.PresetSet) *PresetHandler {
	return &PresetHandler{presets: presets}
}

// ListPresets handles GET /api/v1/presets
func (h *PresetHandler) ListPresets(c *gin.Context) {
	list := h.presets.List()
	out := make([]models.PresetInfo, len(list))
	for i, p := range list {
		out[i] = toPresetInfo(p)
	}
	c.JSON(http.StatusOK, gin.H{"presets": out})
}

// GetPreset handles GET /api/v1/presets/:id
func (h *PresetHandler) GetPreset(c *gin.Context) {
	id := c.Param("id")
	p, ok := h.presets.Get(id)
	if !ok {
		abortWithError(c, http.StatusNotFound, "PRESET_NOT_FOUND", "preset not found: "+id, nil)
		return
	}
	c.JSON(http.StatusOK, toPresetInfo(p))
}

func toPresetInfo(p config.Preset) models.PresetInfo {
	return models.PresetInfo{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Inputs: models.ValuationInputs{
			InitialFreeCashFlow: p.Inputs.InitialFreeCashFlow,
			GrowthRate:          p.Inputs.GrowthRate,
			DiscountRate:        p.Inputs.DiscountRate,
			TerminalGrowthRate:  p.Inputs.TerminalGrowthRate,
			ForecastYears:       p.Inputs.ForecastYears,
		},
	}
}
