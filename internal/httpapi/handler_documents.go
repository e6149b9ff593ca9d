package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"sdformat-go/internal/config"
	"sdformat-go/internal/docstore"
	"sdformat-go/internal/models"
)

// storeError maps docstore failures to responses. Anything unrecognised is
// logged and reported as 500.
func storeError(w http.ResponseWriter, log *zap.Logger, err error) {
	switch {
	case errors.Is(err, docstore.ErrInvalidDocument):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, docstore.ErrDuplicateDocument):
		http.Error(w, "document already stored", http.StatusConflict)
	case errors.Is(err, docstore.ErrNotFound):
		http.Error(w, "document not found", http.StatusNotFound)
	default:
		log.Error("document store failure", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func documentID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid document id", http.StatusBadRequest)
		return uuid.Nil, false
	}
	return id, true
}

func CreateDocumentHandler(cfg *config.Config, store DocumentStore, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, ok := readBody(w, r, cfg.MaxDocumentBytes)
		if !ok {
			return
		}

		doc, err := store.Insert(r.Context(), body)
		if err != nil {
			storeError(w, log, err)
			return
		}

		w.Header().Set("ETag", docstore.ETag(doc.Digest))
		w.Header().Set("Location", "/api/documents/"+doc.ID.String())
		writeJSON(w, http.StatusCreated, doc)
	}
}

func GetDocumentHandler(store DocumentStore, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := documentID(w, r)
		if !ok {
			return
		}

		doc, err := store.Get(r.Context(), id)
		if err != nil {
			storeError(w, log, err)
			return
		}

		etag := docstore.ETag(doc.Digest)
		w.Header().Set("ETag", etag)
		if r.Header.Get("If-None-Match") == etag {
			w.WriteHeader(http.StatusNotModified)
			return
		}
		w.Header().Set("Content-Type", "application/xml")
		_, _ = w.Write(doc.Body)
	}
}

type pluginResponse struct {
	models.Plugin
	Content json.RawMessage `json:"content"`
}

func DocumentPluginsHandler(store DocumentStore, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := documentID(w, r)
		if !ok {
			return
		}

		plugins, err := store.Plugins(r.Context(), id)
		if err != nil {
			storeError(w, log, err)
			return
		}

		res := make([]pluginResponse, 0, len(plugins))
		for _, p := range plugins {
			content, err := docstore.PluginJSON(p.Body)
			if err != nil {
				log.Error("stored plugin is unreadable",
					zap.String("document", id.String()),
					zap.String("path", p.Path),
					zap.Error(err))
				http.Error(w, "internal error", http.StatusInternalServerError)
				return
			}
			res = append(res, pluginResponse{Plugin: p, Content: content})
		}
		writeJSON(w, http.StatusOK, res)
	}
}
