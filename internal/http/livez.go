package http

import (
	"net/http"
	"time"

	"github.com/lanternworks/rolodex/pkg/httpx"
	"github.com/lanternworks/rolodex/pkg/rolodexsdk"
)

// LivezHandler godoc
//
//	@Summary		Liveness probe
//	@Description	Always answers 200 while the process is running.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	rolodexsdk.HealthResponse	"status, uptime, version"
//	@Router			/livez [get].
func LivezHandler(startTime time.Time, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, rolodexsdk.HealthResponse{
			Status:  "ok",
			Uptime:  time.Since(startTime).String(),
			Version: version,
		})
	}
}
