package models

import (
	"time"

	"github.com/google/uuid"
)

// Document is a stored <sdf> document.
type Document struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Digest    string    `db:"digest" json:"digest"`
	Version   string    `db:"version" json:"version"`
	Body      []byte    `db:"body" json:"-"`
	Plugins   int       `db:"-" json:"plugins"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Plugin is one <plugin> found in a stored document. Body holds the plugin
// content as BSON.
type Plugin struct {
	DocumentID uuid.UUID `db:"document_id" json:"document_id"`
	Position   int       `db:"position" json:"position"`
	Path       string    `db:"path" json:"path"`
	Name       string    `db:"name" json:"name"`
	Filename   string    `db:"filename" json:"filename"`
	Body       []byte    `db:"body" json:"-"`
}
