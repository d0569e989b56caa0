package ledger

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/TajHussain7/AutoMetrics-Dashboard-sub000/api"
	"github.com/TajHussain7/AutoMetrics-Dashboard-sub000/api/constants"
	"github.com/TajHussain7/AutoMetrics-Dashboard-sub000/api/utils"

	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5"
)

// ListIngestionSessions handles GET /ledger/sessions with page/limit
// pagination.
func ListIngestionSessions(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params, err := utils.ExtractPagination(r)
		if err != nil {
			api.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		total, err := store.CountSessions(r.Context())
		if err != nil {
			api.RespondWithError(w, http.StatusInternalServerError, constants.ErrSessionLookupFailed)
			return
		}
		params.SetPaginationStats(total)

		sessions, err := store.ListSessions(r.Context(), params.Limit, params.Offset)
		if err != nil {
			api.RespondWithError(w, http.StatusInternalServerError, constants.ErrSessionLookupFailed)
			return
		}
		w.Header().Set("Content-Type", constants.ContentTypeJSON)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success":    true,
			"sessions":   sessions,
			"pagination": params,
		})
	}
}

// GetIngestionSession handles GET /ledger/sessions/{id}.
func GetIngestionSession(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID := mux.Vars(r)["id"]
		sess, err := store.GetSession(r.Context(), sessionID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				api.RespondWithError(w, http.StatusNotFound, constants.ErrSessionNotFound)
				return
			}
			api.RespondWithError(w, http.StatusInternalServerError, constants.ErrSessionLookupFailed)
			return
		}
		w.Header().Set("Content-Type", constants.ContentTypeJSON)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"session": sess,
		})
	}
}
