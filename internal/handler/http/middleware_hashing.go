package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/MKhiriev/go-pass-vault/internal/app"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
)

// entryHashing checks the X-Payload-Hash header of an entry write against
// the HMAC of the entry's payload fields. It is a no-op when no hash key is
// configured.
func (h *Handler) entryHashing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !utils.HashingEnabled() {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)

		body, err := io.ReadAll(r.Body)
		if err != nil {
			log.Err(err).Str("func", "*Handler.entryHashing").Msg("failed to read request body")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		// restore request body
		r.Body = io.NopCloser(bytes.NewReader(body))

		var entry models.VaultEntry
		if err = json.Unmarshal(body, &entry); err != nil {
			log.Err(err).Str("func", "*Handler.entryHashing").Msg("failed to decode JSON")
			http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
			return
		}

		expected, err := utils.PayloadHash(entry.Payload())
		if err != nil {
			log.Err(err).Str("func", "*Handler.entryHashing").Msg("failed to hash payload")
			http.Error(w, app.MsgInternalServerError, http.StatusInternalServerError)
			return
		}

		if !utils.EqualHashes(expected, r.Header.Get(utils.PayloadHashHeader)) {
			log.Warn().Str("func", "*Handler.entryHashing").Msg("payload hash mismatch")
			http.Error(w, app.MsgPayloadHashMismatch, http.StatusBadRequest)
			return
		}

		next.ServeHTTP(w, r)
	})
}
