package spin

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// POST /spin
// --------------------------------------------------
func (h *Handler) Spin(c *gin.Context) {
	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	res, err := h.service.Spin(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, ErrNoCandidates):
			c.JSON(http.StatusBadRequest, gin.H{
				"code":    "NO_CANDIDATES",
				"message": "No dishes match the current category/filters. Try removing some constraints.",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "spin failed"})
		}
		return
	}

	c.JSON(http.StatusOK, res)
}

// --------------------------------------------------
// POST /merge
// --------------------------------------------------
func (h *Handler) Merge(c *gin.Context) {
	var req struct {
		ConstraintsList []Constraints `json:"constraintsList"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	c.JSON(http.StatusOK, Merge(req.ConstraintsList))
}

// --------------------------------------------------
// GET /spins/recent
// --------------------------------------------------
func (h *Handler) Recent(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	records, err := h.service.Recent(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"spins": records})
}
