// Package docstore keeps uploaded SDFormat documents and the plugins found in
// them in PostgreSQL.
package docstore

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
	"sdformat-go/internal/models"
	"sdformat-go/pkg/sdf"
)

// pool is the subset of *pgxpool.Pool the store uses.
type pool interface {
	BeginTx(context.Context, pgx.TxOptions) (pgx.Tx, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

type Store struct {
	pool pool
	log  *zap.Logger
}

func New(p pool, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{pool: p, log: log}
}

// ParseDocument decodes raw as an <sdf> document.
func ParseDocument(raw []byte) (*sdf.SdfRoot, error) {
	root, err := sdf.ParseDocument(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if root.Version == "" {
		return nil, fmt.Errorf("%w: missing version attribute", ErrInvalidDocument)
	}
	return root, nil
}

// Insert stores raw and every plugin in it in one transaction.
func (s *Store) Insert(ctx context.Context, raw []byte) (doc *models.Document, err error) {
	root, err := ParseDocument(raw)
	if err != nil {
		s.log.Warn("rejected sdf document", zap.Error(err))
		return nil, err
	}

	found := CollectPlugins(root)
	bodies := make([][]byte, len(found))
	for i, fp := range found {
		if bodies[i], err = EncodePlugin(fp.Plugin); err != nil {
			return nil, err
		}
	}

	doc = &models.Document{
		ID:      uuid.New(),
		Digest:  Digest(raw),
		Version: root.Version,
		Body:    raw,
		Plugins: len(found),
	}

	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
				s.log.Error("failed to rollback document transaction", zap.Error(rbErr))
			}
			return
		}

		if commitErr := tx.Commit(ctx); commitErr != nil {
			doc, err = nil, fmt.Errorf("commit tx: %w", commitErr)
		}
	}()

	err = tx.QueryRow(ctx, `
        INSERT INTO sdf.documents (id, digest, version, body)
        VALUES ($1, $2, $3, $4)
        ON CONFLICT (digest) DO NOTHING
        RETURNING created_at
    `, doc.ID.String(), doc.Digest, doc.Version, raw).Scan(&doc.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			s.log.Info("sdf document already stored", zap.String("digest", doc.Digest))
			return nil, fmt.Errorf("%w: digest %s", ErrDuplicateDocument, doc.Digest)
		}
		return nil, fmt.Errorf("insert document: %w", err)
	}

	for i, fp := range found {
		if _, err = tx.Exec(ctx, `
            INSERT INTO sdf.plugins (document_id, position, path, name, filename, body)
            VALUES ($1, $2, $3, $4, $5, $6)
        `, doc.ID.String(), i, fp.Path, fp.Plugin.Name, fp.Plugin.Filename, bodies[i]); err != nil {
			return nil, fmt.Errorf("insert plugin %s: %w", fp.Path, err)
		}
	}

	s.log.Info("stored sdf document",
		zap.String("id", doc.ID.String()),
		zap.String("version", doc.Version),
		zap.Int("plugins", len(found)))
	return doc, nil
}

// Get returns the document with id.
func (s *Store) Get(ctx context.Context, id uuid.UUID) (*models.Document, error) {
	doc := &models.Document{ID: id}
	err := s.pool.QueryRow(ctx, `
        SELECT d.digest, d.version, d.body, d.created_at,
               (SELECT count(*) FROM sdf.plugins p WHERE p.document_id = d.id)
        FROM sdf.documents d
        WHERE d.id = $1
    `, id.String()).Scan(&doc.Digest, &doc.Version, &doc.Body, &doc.CreatedAt, &doc.Plugins)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return nil, fmt.Errorf("select document: %w", err)
	}
	return doc, nil
}

// Plugins returns the plugins of document id in document order.
func (s *Store) Plugins(ctx context.Context, id uuid.UUID) ([]models.Plugin, error) {
	var exists bool
	if err := s.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM sdf.documents WHERE id = $1)`, id.String()).Scan(&exists); err != nil {
		return nil, fmt.Errorf("lookup document: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	rows, err := s.pool.Query(ctx, `
        SELECT position, path, name, filename, body
        FROM sdf.plugins
        WHERE document_id = $1
        ORDER BY position
    `, id.String())
	if err != nil {
		return nil, fmt.Errorf("select plugins: %w", err)
	}
	defer rows.Close()

	var out []models.Plugin
	for rows.Next() {
		p := models.Plugin{DocumentID: id}
		if err := rows.Scan(&p.Position, &p.Path, &p.Name, &p.Filename, &p.Body); err != nil {
			return nil, fmt.Errorf("scan plugin: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("select plugins: %w", err)
	}
	return out, nil
}
