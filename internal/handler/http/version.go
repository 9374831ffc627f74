package http

import (
	"io"
	"net/http"
)

// getServerVersion writes the bare version string; the client shows it next
// to its own build info.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, h.services.AppInfoService.GetAppVersion(r.Context()))
}
