package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON encodes data as the response body with the given status. When
// encoding fails the client gets a bare 500 and the error is returned for
// logging.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	body, err := json.Marshal(data)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return 0, fmt.Errorf("encode response body: %w", err)
	}

	h := w.Header()
	h.Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return w.Write(body)
}
