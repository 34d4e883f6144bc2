package server

import (
	"context"
	"embed"
	"encoding/base64"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"gnibdocs/internal/requirements"
	"gnibdocs/internal/storage"
	"gnibdocs/internal/utils"
	"gnibdocs/internal/validate"
	"gnibdocs/pkg/types"

	"github.com/alexedwards/flow"
	"github.com/go-playground/form/v4"
	"github.com/gorilla/securecookie"
	"github.com/sirupsen/logrus"
)

//go:embed templates static
var uiFS embed.FS
var decoder = form.NewDecoder()

// DocumentStore persists metadata for stored uploads.
type DocumentStore interface {
	CreateDocument(ctx context.Context, doc *types.UploadedDocument) error
	DocumentsBySessionID(ctx context.Context, sessionID string) ([]*types.UploadedDocument, error)
	DocumentBySessionAndID(ctx context.Context, sessionID, documentID string) (*types.UploadedDocument, error)
	DeleteDocument(ctx context.Context, sessionID, documentID string) error
}

type Service struct {
	logger    *logrus.Logger
	config    *types.Config
	templates *template.Template

	documents DocumentStore
	storage   storage.Store
	validator *validate.Validator
	metrics   *Metrics

	cookie *securecookie.SecureCookie

	server *http.Server
}

func New(
	config *types.Config,
	logger *logrus.Logger,
	documents DocumentStore,
	objects storage.Store,
	metrics *Metrics,
) (*Service, error) {
	mux := flow.New()

	cookie, err := newSecureCookie(config, logger)
	if err != nil {
		return nil, err
	}

	if metrics == nil {
		metrics = NewMetrics()
	}

	s := &Service{
		logger:    logger,
		config:    config,
		documents: documents,
		storage:   objects,
		validator: validate.New(),
		metrics:   metrics,
		cookie:    cookie,
		server: &http.Server{
			Addr:              fmt.Sprintf(":%d", config.ServerPort),
			Handler:           mux,
			ReadTimeout:       time.Duration(config.ReadTimeoutSec) * time.Second,
			ReadHeaderTimeout: time.Duration(config.ReadTimeoutSec) * time.Second,
			WriteTimeout:      time.Duration(config.WriteTimeoutSec) * time.Second,
			MaxHeaderBytes:    1 << 20,
		},
	}

	templates, err := loadTemplates()
	if err != nil {
		return nil, err
	}
	s.templates = templates

	s.buildRouter(mux)

	// outside the mux so unmatched trailing-slash paths still redirect
	s.server.Handler = s.StripTrailingSlash(mux)

	return s, nil
}

func (s *Service) Start() error {
	return s.server.ListenAndServe()
}

func (s *Service) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// Handler exposes the routed handler, mainly for tests.
func (s *Service) Handler() http.Handler {
	return s.server.Handler
}

func (s *Service) buildRouter(r *flow.Mux) {
	r.Use(s.LoggingMiddleware)
	r.Use(s.metrics.Middleware)

	r.HandleFunc("/", s.handleGetUploadForm, http.MethodGet)
	r.HandleFunc("/upload", s.handlePostUpload, http.MethodPost)
	r.HandleFunc("/uploads", s.handleGetUploads, http.MethodGet)
	r.HandleFunc("/uploads/:id/delete", s.handlePostDeleteUpload, http.MethodPost)
	r.HandleFunc("/reset", s.handlePostReset, http.MethodPost)

	r.HandleFunc("/api/requirements", s.handleGetRequirements, http.MethodGet)
	r.HandleFunc("/api/validate", s.handlePostValidate, http.MethodPost)

	r.HandleFunc("/healthz", s.handleHealth, http.MethodGet)
	r.Handle("/metrics", s.metrics.Handler(), http.MethodGet)

	staticRoot, err := fs.Sub(uiFS, "static")
	if err != nil {
		s.logger.WithError(err).Fatal("failed to mount static assets")
	}
	r.Handle("/static/...", http.StripPrefix("/static/", http.FileServer(http.FS(staticRoot))), http.MethodGet)
}

func newSecureCookie(config *types.Config, logger *logrus.Logger) (*securecookie.SecureCookie, error) {
	hashKey, err := base64.StdEncoding.DecodeString(config.CookieHashKey)
	if err != nil {
		return nil, fmt.Errorf("decode COOKIE_HASH_KEY: %w", err)
	}
	blockKey, err := base64.StdEncoding.DecodeString(config.CookieBlockKey)
	if err != nil {
		return nil, fmt.Errorf("decode COOKIE_BLOCK_KEY: %w", err)
	}

	if len(hashKey) == 0 {
		logger.Warn("COOKIE_HASH_KEY not set, sessions will not survive a restart")
		hashKey = securecookie.GenerateRandomKey(32)
	}
	if len(blockKey) == 0 {
		logger.Warn("COOKIE_BLOCK_KEY not set, sessions will not survive a restart")
		blockKey = securecookie.GenerateRandomKey(32)
	}

	cookie := securecookie.New(hashKey, blockKey)
	cookie.MaxAge(config.SessionMaxAgeSec)

	return cookie, nil
}

func loadTemplates() (*template.Template, error) {
	funcMap := template.FuncMap{
		"docLabel": func(doc types.DocumentType) string {
			return requirements.Label(doc)
		},
		"purposeLabel": func(p types.Purpose) string {
			return requirements.PurposeLabel(p)
		},
		"categoryLabel": func(p types.Purpose, c types.Category) string {
			return requirements.CategoryLabel(p, c)
		},
		"fileSize": formatFileSize,
		"date": func(t *time.Time) string {
			if d := utils.PtrTime(t); !d.IsZero() {
				return d.Format(validate.DateLayout)
			}
			return ""
		},
		"timestamp": func(t time.Time) string {
			return t.Format("2 Jan 2006 15:04")
		},
	}

	t := template.New("").Funcs(funcMap)
	err := fs.WalkDir(uiFS, "templates", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".html") {
			return nil
		}

		data, err := fs.ReadFile(uiFS, path)
		if err != nil {
			return fmt.Errorf("read template %s: %w", path, err)
		}

		if _, err := t.Parse(string(data)); err != nil {
			return fmt.Errorf("parse template %s: %w", path, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return t, nil
}

func formatFileSize(n int64) string {
	switch {
	case n >= 1024*1024:
		return fmt.Sprintf("%.1f MB", float64(n)/(1024*1024))
	case n >= 1024:
		return fmt.Sprintf("%.0f KB", float64(n)/1024)
	default:
		return fmt.Sprintf("%d B", n)
	}
}
