package httpapi

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"sdformat-go/internal/codegen"
	"sdformat-go/internal/config"
	"sdformat-go/internal/models"
)

// DocumentStore is the persistence the document endpoints need.
// *docstore.Store implements it.
type DocumentStore interface {
	Insert(ctx context.Context, raw []byte) (*models.Document, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Document, error)
	Plugins(ctx context.Context, id uuid.UUID) ([]models.Plugin, error)
}

// Pinger reports database health.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Deps struct {
	Store  DocumentStore
	DB     Pinger
	Types  []codegen.TypeDef
	Logger *zap.Logger
}

func NewRouter(cfg *config.Config, deps Deps) http.Handler {
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}

	r := chi.NewRouter()

	r.Use(LoggingMiddleware(log))
	r.Use(RecoverMiddleware(log))

	r.Get("/health", HealthHandler(deps.DB))
	r.Get("/version", VersionHandler())

	r.Route("/api", func(api chi.Router) {
		api.Use(APIKeyAuth(cfg))

		api.Post("/documents", CreateDocumentHandler(cfg, deps.Store, log))
		api.Get("/documents/{id}", GetDocumentHandler(deps.Store, log))
		api.Get("/documents/{id}/plugins", DocumentPluginsHandler(deps.Store, log))
		api.Post("/normalize", NormalizeHandler(cfg))
		api.Post("/pose", PoseHandler())
		api.Get("/schema/types", SchemaTypesHandler(deps.Types))
	})

	return r
}
