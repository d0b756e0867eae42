package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"dcf-valuation/internal/api/models"
	"dcf-valuation/internal/config"
	"dcf-valuation/internal/model"
	"dcf-valuation/internal/report"
	"dcf-valuation/internal/store"
	"dcf-valuation/internal/valuation"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// StoredValuation is what the result cache keeps per valuation ID.
type StoredValuation struct {
	Response    models.ValuationResponse
	Projections []valuation.YearlyProjection
}

// ValuationHandler handles valuation requests. It resolves inputs, calls the
// engine and formats the result; it does no financial arithmetic itself.
type ValuationHandler struct {
	presets  *config.PresetSet
	results  *store.ResultCache[StoredValuation]
	maxYears int
	log      zerolog.Logger
}

// NewValuationHandler creates a new valuation handler
func NewValuationHandler(presets *config.PresetSet, results *store.ResultCache[StoredValuation], maxYears int, log zerolog.Logger) *ValuationHandler {
	return &ValuationHandler{
		presets:  presets,
		results:  results,
		maxYears: maxYears,
		log:      log.With().Str("handler", "valuation").Logger(),
	}
}

// RunValuation handles POST /api/v1/valuation
func (h *ValuationHandler) RunValuation(c *gin.Context) {
	var req models.ValuationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error(), nil)
		return
	}

	in, err := h.resolveInputs(req)
	if err != nil {
		if errors.Is(err, config.ErrPresetNotFound) {
			abortWithError(c, http.StatusNotFound, "PRESET_NOT_FOUND", err.Error(), map[string]interface{}{
				"preset": req.Preset,
			})
			return
		}
		abortWithError(c, http.StatusBadRequest, "INVALID_INPUT", err.Error(), nil)
		return
	}

	res, err := valuation.Compute(in)
	if err != nil {
		status, code := errorStatus(err)
		h.log.Debug().Err(err).Str("code", code).Msg("valuation rejected")
		abortWithError(c, status, code, err.Error(), nil)
		return
	}

	resp := buildResponse(in, res, req.Options.IncludeChart)
	resp.Preset = req.Preset

	id := h.results.Put(StoredValuation{Response: resp, Projections: res.Projections})
	resp.ID = id

	h.log.Info().
		Str("id", id).
		Int("forecast_years", in.ForecastYears).
		Float64("total_intrinsic_value", res.TotalIntrinsicValue).
		Msg("valuation computed")

	c.JSON(http.StatusOK, resp)
}

// GetValuation handles GET /api/v1/valuation/:id
func (h *ValuationHandler) GetValuation(c *gin.Context) {
	stored, ok := h.lookup(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, stored.Response)
}

// GetValuationTable handles GET /api/v1/valuation/:id/table.csv
func (h *ValuationHandler) GetValuationTable(c *gin.Context) {
	stored, ok := h.lookup(c)
	if !ok {
		return
	}
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="dcf-%s.csv"`, stored.Response.ID))
	c.Status(http.StatusOK)
	if err := valuation.EncodeTableCSV(c.Writer, stored.Projections); err != nil {
		h.log.Error().Err(err).Str("id", stored.Response.ID).Msg("write table csv")
	}
}

func (h *ValuationHandler) lookup(c *gin.Context) (StoredValuation, bool) {
	id := c.Param("id")
	stored, ok := h.results.Get(id)
	if !ok {
		abortWithError(c, http.StatusNotFound, "NOT_FOUND", fmt.Sprintf("valuation %q not found or expired", id), nil)
		return StoredValuation{}, false
	}
	stored.Response.ID = id
	return stored, true
}

// resolveInputs merges request inputs over the optional preset and applies the
// configured horizon ceiling.
func (h *ValuationHandler) resolveInputs(req models.ValuationRequest) (model.Inputs, error) {
	cfg := toInputConfig(req.Inputs)
	if req.Preset != "" {
		p, ok := h.presets.Get(req.Preset)
		if !ok {
			return model.Inputs{}, fmt.Errorf("%w: %q", config.ErrPresetNotFound, req.Preset)
		}
		cfg = config.MergeInputs(p.Inputs, cfg)
	}

	in, err := cfg.ToModelInputs()
	if err != nil {
		return model.Inputs{}, err
	}
	if err := in.CheckHorizon(h.maxYears); err != nil {
		return model.Inputs{}, err
	}
	return in, nil
}

func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, model.ErrArithmeticSingularity):
		return http.StatusUnprocessableEntity, "ARITHMETIC_SINGULARITY"
	case errors.Is(err, model.ErrInvalidInput):
		return http.StatusBadRequest, "INVALID_INPUT"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR"
	}
}

func buildResponse(in model.Inputs, res *valuation.Result, includeChart bool) models.ValuationResponse {
	rep := report.Build(res)

	rows := make([]models.ProjectionRow, len(rep.Table))
	for i, r := range rep.Table {
		rows[i] = models.ProjectionRow{
			Year:              r.Year,
			ForecastedFCF:     models.Number(r.ForecastedFCF),
			PresentValueOfFCF: models.Number(r.PresentValueOfFCF),
		}
	}

	resp := models.ValuationResponse{
		Inputs: models.EchoedInputs{
			InitialFreeCashFlow: models.Number(in.InitialFreeCashFlow),
			GrowthRate:          models.Number(in.GrowthRate),
			DiscountRate:        models.Number(in.DiscountRate),
			TerminalGrowthRate:  models.Number(in.TerminalGrowthRate),
			ForecastYears:       in.ForecastYears,
		},
		Table:                       rows,
		TerminalValue:               models.Number(rep.TerminalValue),
		PresentValueOfTerminalValue: models.Number(rep.PresentValueOfTerminalValue),
		TotalIntrinsicValue:         models.Number(rep.TotalIntrinsicValue),
		Summary:                     rep.Summary,
		Warnings:                    in.Warnings(),
	}

	if includeChart {
		points := make([]models.ChartPoint, len(rep.Chart.Points))
		for i, p := range rep.Chart.Points {
			points[i] = models.ChartPoint{X: models.Number(p.X), Y: models.Number(p.Y)}
		}
		resp.Chart = &models.Chart{
			Title:  rep.Chart.Title,
			XLabel: rep.Chart.XLabel,
			YLabel: rep.Chart.YLabel,
			Points: points,
		}
	}
	return resp
}

func toInputConfig(in models.ValuationInputs) config.InputConfig {
	return config.InputConfig{
		InitialFreeCashFlow: in.InitialFreeCashFlow,
		GrowthRate:          in.GrowthRate,
		DiscountRate:        in.DiscountRate,
		TerminalGrowthRate:  in.TerminalGrowthRate,
		ForecastYears:       in.ForecastYears,
	}
}

func abortWithError(c *gin.Context, status int, code, message string, details map[string]interface{}) {
	c.AbortWithStatusJSON(status, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}
