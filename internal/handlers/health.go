package handlers

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/heptiolabs/healthcheck"
)

// WorkerStatus reports which background workers are alive
type WorkerStatus interface {
	GetWorkerStatus() map[string]bool
}

// HealthHandler serves liveness and readiness probes
type HealthHandler struct {
	checks  healthcheck.Handler
	workers WorkerStatus
}

// NewHealthHandler checks the database on readiness. workers may be nil
// when the notifier is disabled.
func NewHealthHandler(db *sql.DB, workers WorkerStatus) *HealthHandler {
	checks := healthcheck.NewHandler()
	checks.AddLivenessCheck("goroutine-threshold", healthcheck.GoroutineCountCheck(1000))
	checks.AddReadinessCheck("database", healthcheck.DatabasePingCheck(db, 2*time.Second))

	return &HealthHandler{checks: checks, workers: workers}
}

// Health returns a summary including worker state
func (h *HealthHandler) Health(c *gin.Context) {
	status := http.StatusOK
	body := gin.H{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}

	rec := &statusRecorder{}
	h.checks.ReadyEndpoint(rec, c.Request)
	if rec.status != http.StatusOK {
		status = http.StatusServiceUnavailable
		body["status"] = "unavailable"
	}

	if h.workers != nil {
		body["workers"] = h.workers.GetWorkerStatus()
	}
	c.JSON(status, body)
}

func (h *HealthHandler) Live(c *gin.Context) {
	h.checks.LiveEndpoint(c.Writer, c.Request)
}

func (h *HealthHandler) Ready(c *gin.Context) {
	h.checks.ReadyEndpoint(c.Writer, c.Request)
}

// statusRecorder captures only the status code of a probe
type statusRecorder struct {
	header http.Header
	status int
}

func (r *statusRecorder) Header() http.Header {
	if r.header == nil {
		r.header = make(http.Header)
	}
	return r.header
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	return len(b), nil
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
}
