package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/TajHussain7/AutoMetrics-Dashboard-sub000/api/constants"
)

func TestRespondWithError(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondWithError(rec, http.StatusBadRequest, "bad input")

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status got=%d want=%d", rec.Code, http.StatusBadRequest)
	}
	if ct := rec.Header().Get("Content-Type"); ct != constants.ContentTypeJSON {
		t.Fatalf("content type got=%q want=%q", ct, constants.ContentTypeJSON)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["success"] != false || body["error"] != "bad input" {
		t.Fatalf("body got=%v", body)
	}
}

func TestRespondWithJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondWithJSON(rec, http.StatusOK, map[string]string{"status": "ok"})

	if rec.Code != http.StatusOK {
		t.Fatalf("status got=%d want=%d", rec.Code, http.StatusOK)
	}
	if ct := rec.Header().Get("Content-Type"); ct != constants.ContentTypeJSON {
		t.Fatalf("content type got=%q want=%q", ct, constants.ContentTypeJSON)
	}
}
