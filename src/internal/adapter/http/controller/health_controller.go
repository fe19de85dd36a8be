package controller

import (
	"net/http"

	"github.com/api-sage/payment-instruction-processor/src/internal/commons"
)

type HealthController struct{}

func NewHealthController() *HealthController {
	return &HealthController{}
}

// RegisterRoutes never applies auth; probes must stay reachable.
func (c *HealthController) RegisterRoutes(mux *http.ServeMux, _ func(http.Handler) http.Handler) {
	mux.HandleFunc("/health", c.health)
}

func (c *HealthController) health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, commons.ErrorResponse[map[string]string]("method not allowed"))
		return
	}

	writeJSON(w, http.StatusOK, commons.SuccessResponse("ok", map[string]string{"status": "up"}))
}
