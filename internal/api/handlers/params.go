package handlers

import (
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	"grid-scenarios/internal/api/models"
	"grid-scenarios/internal/model"

	"github.com/gin-gonic/gin"
)

// ParamsHandler exposes the constant tables the calculator runs on
type ParamsHandler struct {
	params model.Params
}

// NewParamsHandler creates a new params handler
func NewParamsHandler(params model.Params) *ParamsHandler {
	return &ParamsHandler{params: params}
}

// GetParams handles GET /api/v1/params
func (h *ParamsHandler) GetParams(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"params": h.params})
}

// percentQuery reads an optional numeric query parameter. Out-of-range values are
// passed through; non-numeric input and NaN or Inf are rejected. On error the 400 response has
// already been written.
func percentQuery(c *gin.Context, key string, def float64) (float64, bool) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return def, true
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_PARAM",
				Message: fmt.Sprintf("%s must be a finite number, got %q", key, raw),
				Details: map[string]interface{}{"param": key},
			},
		})
		return 0, false
	}
	return v, true
}
