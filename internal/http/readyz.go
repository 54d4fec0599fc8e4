package http

import (
	"net/http"
	"time"

	"github.com/lanternworks/rolodex/internal/store"
	"github.com/lanternworks/rolodex/pkg/httpx"
	"github.com/lanternworks/rolodex/pkg/rolodexsdk"
)

// ReadyzHandler godoc
//
//	@Summary		Readiness probe
//	@Description	Answers 200 when the database is reachable, 503 otherwise.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	rolodexsdk.HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	rolodexsdk.HealthResponse	"service not ready"
//	@Router			/readyz [get].
func ReadyzHandler(startTime time.Time, version string, st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &rolodexsdk.HealthChecks{Database: "ok"}
		status := "ok"
		code := http.StatusOK

		if err := st.Ping(r.Context()); err != nil {
			checks.Database = "error: " + err.Error()
			status = "degraded"
			code = http.StatusServiceUnavailable
		}

		httpx.WriteJSON(w, code, rolodexsdk.HealthResponse{
			Status:  status,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		})
	}
}
