package ledger

import (
	"fmt"
	"log"
	"net/http"

	"github.com/TajHussain7/AutoMetrics-Dashboard-sub000/internal/config"

	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
)

// StartLedgerService runs the ledger vertical's HTTP listener. The gateway
// proxies /ledger/ traffic here.
func StartLedgerService(cfg map[string]interface{}, pool *pgxpool.Pool) {
	port := config.LedgerServicePort
	if cfg != nil {
		if p, ok := cfg["port"].(int); ok && p > 0 {
			port = p
		}
	}

	store := NewStore(pool)

	router := mux.NewRouter()
	router.HandleFunc("/ledger/upload", UploadLedgerFile(store)).Methods("POST")
	router.HandleFunc("/ledger/sessions", ListIngestionSessions(store)).Methods("GET")
	router.HandleFunc("/ledger/sessions/{id}", GetIngestionSession(store)).Methods("GET")
	router.HandleFunc("/ledger/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Ledger Service is healthy"))
	}).Methods("GET")

	addr := fmt.Sprintf(":%d", port)
	log.Println("Ledger Service started on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatalf("Ledger Service failed: %v", err)
	}
}
