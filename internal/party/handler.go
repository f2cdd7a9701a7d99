package party

import (
	"errors"
	"net/http"
	"strings"

	"mealslot/internal/spin"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"code": "NO_ROOM", "message": "Session not found"})
	case errors.Is(err, ErrMemberNotFound):
		c.JSON(http.StatusNotFound, gin.H{"code": "NO_MEMBER", "message": "Member not found"})
	case errors.Is(err, ErrHostOnly):
		c.JSON(http.StatusForbidden, gin.H{"code": "HOST_ONLY", "message": "Only host can spin"})
	case errors.Is(err, spin.ErrNoCandidates):
		c.JSON(http.StatusBadRequest, gin.H{"code": "NO_CANDIDATES", "message": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"code": "INTERNAL"})
	}
}

func roomCode(c *gin.Context) string {
	return strings.ToUpper(c.Param("code"))
}

// --------------------------------------------------
// POST /party
// --------------------------------------------------
func (h *Handler) Create(c *gin.Context) {
	var req struct {
		Nickname string `json:"nickname"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	code, memberID, err := h.service.Create(req.Nickname)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"code":     code,
		"memberId": memberID,
	})
}

// --------------------------------------------------
// POST /party/join
// --------------------------------------------------
func (h *Handler) Join(c *gin.Context) {
	var req struct {
		Code     string `json:"code"`
		Nickname string `json:"nickname"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || len(req.Code) != 6 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	memberID, err := h.service.Join(strings.ToUpper(req.Code), req.Nickname)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"memberId": memberID})
}

// --------------------------------------------------
// GET /party/:code/state
// --------------------------------------------------
func (h *Handler) State(c *gin.Context) {
	view, err := h.service.State(roomCode(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// --------------------------------------------------
// POST /party/:code/constraints
// --------------------------------------------------
func (h *Handler) UpdateConstraints(c *gin.Context) {
	var req struct {
		MemberID    string           `json:"memberId"`
		Constraints spin.Constraints `json:"constraints"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.MemberID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.service.UpdateConstraints(roomCode(c), req.MemberID, req.Constraints); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// --------------------------------------------------
// POST /party/:code/powerups
// --------------------------------------------------
func (h *Handler) UpdatePowerUps(c *gin.Context) {
	var req struct {
		MemberID string        `json:"memberId"`
		PowerUps spin.PowerUps `json:"powerUps"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.MemberID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.service.UpdatePowerUps(roomCode(c), req.MemberID, req.PowerUps); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// --------------------------------------------------
// POST /party/:code/spin
// --------------------------------------------------
func (h *Handler) Spin(c *gin.Context) {
	var req struct {
		MemberID string `json:"memberId"`
		Seed     string `json:"seed"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.MemberID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	res, err := h.service.HostSpin(c.Request.Context(), roomCode(c), req.MemberID, req.Seed)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// --------------------------------------------------
// POST /party/:code/heartbeat
// --------------------------------------------------
func (h *Handler) Heartbeat(c *gin.Context) {
	if err := h.service.Heartbeat(roomCode(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// --------------------------------------------------
// POST /party/:code/leave
// --------------------------------------------------
func (h *Handler) Leave(c *gin.Context) {
	var req struct {
		MemberID string `json:"memberId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.MemberID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.service.Leave(roomCode(c), req.MemberID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
