package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-pass-vault/internal/app"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Str("func", "*Handler.register").Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	token, err := h.services.AuthService.Register(r.Context(), user)
	if err != nil {
		h.writeError(w, r, err, "*Handler.register")
		return
	}

	log.Info().Int64("owner_id", token.UserID).Msg("user registered")
	writeToken(w, token)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Str("func", "*Handler.login").Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	token, err := h.services.AuthService.Login(r.Context(), user)
	if err != nil {
		h.writeError(w, r, err, "*Handler.login")
		return
	}

	log.Info().Int64("owner_id", token.UserID).Msg("user logged in")
	writeToken(w, token)
}

// writeToken answers with the session token in both the Authorization header
// and the JSON body.
func writeToken(w http.ResponseWriter, token models.Token) {
	w.Header().Set("Authorization", "Bearer "+token.SignedString)
	utils.WriteJSON(w, models.TokenResponse{Token: token.SignedString}, http.StatusOK)
}

// writeError logs err with the request logger and writes the mapped status
// and generic message.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error, fn string) {
	status, msg := statusFromError(err)

	event := logger.FromRequest(r).Warn()
	if status >= http.StatusInternalServerError {
		event = logger.FromRequest(r).Error()
	}
	event.Err(err).Str("func", fn).Int("status", status).Send()

	http.Error(w, msg, status)
}
