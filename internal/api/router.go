package api

import (
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/workjournal/workjournal/internal/api/recovery"
	"github.com/workjournal/workjournal/internal/services"
	"github.com/workjournal/workjournal/internal/store"
	"github.com/workjournal/workjournal/internal/web"
)

// NewRouter wires HTTP routes to handlers. The store handle is built once at
// process start and injected here; handlers never construct their own.
func NewRouter(st store.Store, log zerolog.Logger) *mux.Router {
	root := mux.NewRouter()
	root.Use(recovery.Middleware)

	entrySvc := services.NewEntryService(st)
	entry := NewEntryHandler(entrySvc, web.NewRenderer(), log)
	root.HandleFunc("/", entry.Index).Methods("GET")
	root.HandleFunc("/", entry.CreateEntry).Methods("POST")
	root.HandleFunc("/entries/{entryId}/edit", entry.EditEntry).Methods("GET")

	health := NewHealthHandler(st)
	root.HandleFunc("/api/health", health.CheckHealth).Methods("GET")

	return root
}
