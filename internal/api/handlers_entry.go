package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/workjournal/workjournal/internal/api/validate"
	"github.com/workjournal/workjournal/internal/model"
	"github.com/workjournal/workjournal/internal/services"
	"github.com/workjournal/workjournal/internal/web"
)

// EntryHandler is the HTML transport for the journal: listing page, create
// form submission, and the read-only edit page.
type EntryHandler struct {
	svc    *services.EntryService
	render *web.Renderer
	log    zerolog.Logger
}

func NewEntryHandler(svc *services.EntryService, render *web.Renderer, log zerolog.Logger) *EntryHandler {
	return &EntryHandler{svc: svc, render: render, log: log}
}

// Index GET /
func (h *EntryHandler) Index(w http.ResponseWriter, r *http.Request) {
	weeks, dropped, err := h.svc.WeeklySummaries(r.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("listing entries failed")
		h.renderError(w, http.StatusInternalServerError, err.Error(), nil)
		return
	}
	if dropped > 0 {
		h.log.Warn().Int("dropped", dropped).Msg("entries hidden by category filter")
	}

	h.renderPage(w, http.StatusOK, "index", web.IndexData{Weeks: weeks, Dropped: dropped})
}

// CreateEntry POST /
func (h *EntryHandler) CreateEntry(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderError(w, http.StatusBadRequest, "malformed form body", nil)
		return
	}
	req := model.CreateEntryRequest{
		Date:     r.PostFormValue("date"),
		Category: r.PostFormValue("category"),
		Text:     r.PostFormValue("text"),
	}

	if err := validate.CreateEntry(req); err != nil {
		var fe *model.FieldErrors
		if errors.As(err, &fe) {
			h.renderError(w, http.StatusBadRequest, "", fe.Fields)
		} else {
			h.renderError(w, http.StatusBadRequest, err.Error(), nil)
		}
		return
	}

	entry, err := h.svc.CreateEntry(r.Context(), req)
	if err != nil {
		h.log.Error().Err(err).Msg("creating entry failed")
		h.renderError(w, http.StatusInternalServerError, err.Error(), nil)
		return
	}
	h.log.Info().Int64("id", entry.ID).Str("category", entry.Category).Msg("entry created")

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// EditEntry GET /entries/{entryId}/edit
//
// Read-only: the page shows the entry but no update path exists.
func (h *EntryHandler) EditEntry(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["entryId"], 10, 64)
	if err != nil {
		h.renderError(w, http.StatusNotFound, "no such entry", nil)
		return
	}

	entry, err := h.svc.GetEntry(r.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			h.renderError(w, http.StatusNotFound, "no such entry", nil)
			return
		}
		h.log.Error().Err(err).Int64("id", id).Msg("loading entry failed")
		h.renderError(w, http.StatusInternalServerError, err.Error(), nil)
		return
	}

	h.renderPage(w, http.StatusOK, "edit", web.EditData{Entry: *entry, Date: entry.DateString()})
}

func (h *EntryHandler) renderPage(w http.ResponseWriter, status int, page string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := h.render.Render(w, page, data); err != nil {
		h.log.Error().Err(err).Str("page", page).Msg("rendering page failed")
	}
}

func (h *EntryHandler) renderError(w http.ResponseWriter, status int, message string, fields map[string]string) {
	h.renderPage(w, status, "error", web.ErrorData{
		Status:  status,
		Title:   http.StatusText(status),
		Message: message,
		Fields:  fields,
	})
}
