package handlers

import (
	"context"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ytareq/portfolio/internal/content"
)

const maxHeroFrames = 10000

// HeroHandler streams the typed-text banner as Server-Sent Events
type HeroHandler struct {
	typewriter *content.Typewriter
	wait       func(ctx context.Context, d time.Duration) bool
}

func NewHeroHandler(typewriter *content.Typewriter) *HeroHandler {
	return &HeroHandler{typewriter: typewriter, wait: sleepContext}
}

// Typed streams one "frame" event per step of the banner. ?frames= limits
// the number of events; without it the stream runs until the client leaves.
func (h *HeroHandler) Typed(c *gin.Context) {
	limit := 0
	if raw := c.Query("frames"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxHeroFrames {
			c.JSON(http.StatusBadRequest, gin.H{"error": "frames must be between 1 and 10000"})
			return
		}
		limit = n
	}

	c.Header("Cache-Control", "no-cache")
	c.Header("X-Accel-Buffering", "no")

	// the server write timeout would otherwise cut long streams
	_ = http.NewResponseController(c.Writer).SetWriteDeadline(time.Time{})

	ctx := c.Request.Context()
	frame := content.Frame{}
	sent := 0

	c.Stream(func(w io.Writer) bool {
		next, delay := h.typewriter.Next(frame)
		if !h.wait(ctx, delay) {
			return false
		}
		c.SSEvent("frame", next)
		frame = next
		sent++
		return limit == 0 || sent < limit
	})
}

func sleepContext(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
