package recipe

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// POST /recipe
// --------------------------------------------------
func (h *Handler) Generate(c *gin.Context) {
	var req struct {
		Dishes []string `json:"dishes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || len(req.Dishes) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "dishes are required"})
		return
	}

	out, err := h.service.Generate(c.Request.Context(), req.Dishes)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "recipe generation failed schema validation after one retry",
		})
		return
	}

	c.JSON(http.StatusOK, out)
}
