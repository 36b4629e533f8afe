package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// ReadyResponse reports snapshot readiness.
type ReadyResponse struct {
	Status  string         `json:"status" example:"ready"`
	TakenAt time.Time      `json:"taken_at"`
	Tables  map[string]int `json:"tables"`
	Missing []string       `json:"missing,omitempty"`
	Error   string         `json:"error,omitempty"`
}

// Ping godoc
// @Summary      Liveness probe
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string "{"message": "pong"}"
// @Router       /ping [get]
func Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}

// Ready godoc
// @Summary      Readiness probe
// @Description  Reports whether every table is present in the in-memory snapshot.
// @Tags         health
// @Produce      json
// @Success      200  {object}  ReadyResponse
// @Failure      503  {object}  ReadyResponse "Snapshot incomplete"
// @Router       /ready [get]
func (h *Handler) Ready(c *gin.Context) {
	resp := ReadyResponse{
		Status:  "ready",
		TakenAt: h.snap.TakenAt,
		Tables:  h.snap.Rows(),
	}
	if err := h.snap.Ready(); err != nil {
		resp.Status = "not ready"
		resp.Missing = h.snap.Missing()
		resp.Error = err.Error()
		c.JSON(http.StatusServiceUnavailable, resp)
		return
	}
	c.JSON(http.StatusOK, resp)
}
