package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-pass-vault/internal/app"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
)

// auth enforces bearer-token authentication on the entry routes.
//
// On success the owner id is stored in the request context (see
// [utils.WithOwnerID]) and the request logger is tagged with it. Any failure
// is answered with 401; the body only says whether the token expired.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Warn().Err(ErrEmptyAuthorizationHeader).Send()
			http.Error(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Warn().Err(ErrInvalidAuthorizationHeader).Send()
			http.Error(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		ownerID, err := h.services.AuthService.Authenticate(ctx, tokenString)
		if err != nil {
			msg := app.MsgTokenIsExpiredOrInvalid
			if errors.Is(err, service.ErrTokenIsExpired) {
				msg = app.MsgTokenIsExpired
			}
			log.Warn().Err(err).Msg("token rejected")
			http.Error(w, msg, http.StatusUnauthorized)
			return
		}

		ctx = utils.WithOwnerID(ctx, ownerID)
		ctx = log.WithOwner(ownerID).WithContext(ctx)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
