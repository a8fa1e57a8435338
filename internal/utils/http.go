package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/ucip-keeper/models"
)

// marshalFailureBody is written when the real payload cannot be encoded.
const marshalFailureBody = `{"detail":"Internal server error"}`

// WriteJSON encodes data and writes it with statusCode and a JSON content
// type. It returns the number of body bytes written.
//
// If data cannot be encoded the client gets a 500 with the usual
// {"detail": ...} body and the marshal error is returned to the caller for
// logging.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	body, err := json.Marshal(data)
	if err != nil {
		statusCode, body = http.StatusInternalServerError, []byte(marshalFailureBody)
		err = fmt.Errorf("error encoding %T response: %w", data, err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	n, writeErr := w.Write(body)
	if err != nil {
		return n, err
	}
	return n, writeErr
}

// WriteError writes a {"detail": ...} error body with the given status code.
func WriteError(w http.ResponseWriter, statusCode int, detail string) {
	_, _ = WriteJSON(w, models.ErrorResponse{Detail: detail}, statusCode)
}
