package ledger

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/TajHussain7/AutoMetrics-Dashboard-sub000/api"
	"github.com/TajHussain7/AutoMetrics-Dashboard-sub000/api/constants"
	"github.com/TajHussain7/AutoMetrics-Dashboard-sub000/api/ledger/ingestion"
	"github.com/TajHussain7/AutoMetrics-Dashboard-sub000/internal/config"
)

// allowedExtensions is the upload allow-list enforced before any bytes reach
// the extraction pipeline.
var allowedExtensions = map[string]bool{
	".csv":  true,
	".xls":  true,
	".xlsx": true,
}

type uploadResponse struct {
	Success   bool                       `json:"success"`
	SessionID string                     `json:"session_id"`
	FileName  string                     `json:"file_name"`
	Result    *ingestion.IngestionResult `json:"result"`
}

// UploadLedgerFile handles POST /ledger/upload: validates the multipart file,
// runs the extraction pipeline and stages the outcome through the store.
func UploadLedgerFile(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if err := r.ParseMultipartForm(config.MaxUploadBytes); err != nil {
			api.RespondWithError(w, http.StatusBadRequest, constants.ErrMultipartParseFailed)
			return
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			api.RespondWithError(w, http.StatusBadRequest, constants.ErrNoFileUploaded)
			return
		}
		defer file.Close()

		ext := strings.ToLower(filepath.Ext(header.Filename))
		if !allowedExtensions[ext] {
			api.RespondWithError(w, http.StatusBadRequest, constants.ErrUnsupportedLedgerFile)
			return
		}
		if header.Size > config.MaxUploadBytes {
			api.RespondWithError(w, http.StatusBadRequest, constants.ErrFileTooLarge)
			return
		}

		data, err := io.ReadAll(file)
		if err != nil {
			api.RespondWithError(w, http.StatusBadRequest, constants.ErrFileReadFailed)
			return
		}

		result, err := ingestion.Ingest(data, header.Filename, time.Now())
		if err != nil {
			api.RespondWithError(w, http.StatusBadRequest, userFacingIngestError(err))
			return
		}

		sessionID, err := store.SaveIngestion(ctx, header.Filename, result)
		if err != nil {
			log.Printf("[LEDGER-UPLOAD] failed to stage %s: %v", header.Filename, err)
			api.RespondWithError(w, http.StatusInternalServerError, constants.ErrStagingFailed)
			return
		}

		log.Printf("[LEDGER-UPLOAD] %s staged as session %s: %d records, %d skipped",
			header.Filename, sessionID, len(result.Records), result.SkippedRows)

		w.Header().Set("Content-Type", constants.ContentTypeJSON)
		json.NewEncoder(w).Encode(uploadResponse{
			Success:   true,
			SessionID: sessionID,
			FileName:  header.Filename,
			Result:    result,
		})
	}
}

func userFacingIngestError(err error) string {
	switch {
	case errors.Is(err, ingestion.ErrUnsupportedFileType):
		return constants.ErrUnsupportedLedgerFile
	case errors.Is(err, ingestion.ErrMalformedInput):
		return constants.ErrMalformedLedgerFile
	case errors.Is(err, ingestion.ErrNoDataAfterHeader):
		return constants.ErrNoLedgerData
	}
	return constants.ErrIngestionFailed
}
