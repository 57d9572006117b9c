package api

import (
	"net/http"

	"github.com/seenimoa/radialchart/internal/config"
)

// ConfigResponse is the JSON envelope returned by GET /config.
type ConfigResponse struct {
	ConfigFile string           `json:"config_file"` // empty when running on defaults
	Settings   []config.Setting `json:"settings"`
}

// handleGetConfig returns the configuration the chart was rendered with.
// The server is read-only; there is no update endpoint.
func (s *Server) handleGetConfig(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data: ConfigResponse{
			ConfigFile: s.cfg.ConfigFile(),
			Settings:   s.cfg.Settings(),
		},
	})
}
