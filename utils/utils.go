package utils

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"
)

func ParseJSONBody(r *http.Request, dst interface{}) error {
	return jsoniter.NewDecoder(r.Body).Decode(dst)
}

func RespondJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	response, err := jsoniter.Marshal(payload)
	if err != nil {
		http.Error(w, "Failed to serialize JSON response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write(response)
}

// RespondError writes the backend's uniform {"error": ...} envelope.
func RespondError(w http.ResponseWriter, statusCode int, err error, message string) {
	if err != nil {
		zap.L().Debug("request error", zap.Int("status", statusCode), zap.Error(err))
	}
	RespondJSON(w, statusCode, map[string]string{"error": message})
}
