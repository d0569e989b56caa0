package api

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/TajHussain7/AutoMetrics-Dashboard-sub000/api/constants"
)

// RespondWithError sends the standard JSON error envelope.
func RespondWithError(w http.ResponseWriter, status int, errMsg string) {
	log.Println("[ERROR]", errMsg)
	w.Header().Set("Content-Type", constants.ContentTypeJSON)
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": false,
		"error":   errMsg,
	})
}

// RespondWithJSON sends a success payload with the given status.
func RespondWithJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", constants.ContentTypeJSON)
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
