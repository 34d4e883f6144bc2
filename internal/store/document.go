package store

import (
	"context"
	"fmt"
	"time"

	"gnibdocs/internal/utils"
	"gnibdocs/pkg/types"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"
)

const documentTableName = "gnibdocs.uploaded_documents"

var documentColumns = utils.StructTagValues(types.UploadedDocument{})

type DocumentRepository struct {
	pool *pgxpool.Pool
}

func NewDocumentRepository(pool *pgxpool.Pool) *DocumentRepository {
	return &DocumentRepository{pool: pool}
}

// DocumentBySessionAndID retrieves a single document owned by a session
func (r *DocumentRepository) DocumentBySessionAndID(ctx context.Context, sessionID, documentID string) (*types.UploadedDocument, error) {
	query, args, err := documentBySessionAndIDQuery(sessionID, documentID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate document query: %w", err)
	}

	var doc = new(types.UploadedDocument)
	err = pgxscan.Get(ctx, r.pool, doc, query, args...)
	if err != nil && !pgxscan.NotFound(err) {
		return nil, err
	}

	if err != nil {
		return nil, types.ErrDocumentNotFound
	}

	return doc, nil
}

// DocumentsBySessionID retrieves all documents uploaded in a session, newest first
func (r *DocumentRepository) DocumentsBySessionID(ctx context.Context, sessionID string) ([]*types.UploadedDocument, error) {
	query, args, err := documentsBySessionIDQuery(sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate documents query: %w", err)
	}

	docs := make([]*types.UploadedDocument, 0)
	err = pgxscan.Select(ctx, r.pool, &docs, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch documents: %w", err)
	}

	return docs, nil
}

// CreateDocument inserts a new document record, stamping UploadedAt
func (r *DocumentRepository) CreateDocument(ctx context.Context, doc *types.UploadedDocument) error {
	doc.UploadedAt = time.Now().UTC()

	query, args, err := createDocumentQuery(doc)
	if err != nil {
		return fmt.Errorf("failed to generate insert query: %w", err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to insert document: %w", err)
	}

	return nil
}

// DeleteDocument removes one document record owned by a session
func (r *DocumentRepository) DeleteDocument(ctx context.Context, sessionID, documentID string) error {
	query, args, err := deleteDocumentQuery(sessionID, documentID)
	if err != nil {
		return fmt.Errorf("failed to generate delete query: %w", err)
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return types.ErrDocumentNotFound
	}

	return nil
}

func documentBySessionAndIDQuery(sessionID, documentID string) (string, []any, error) {
	return psql().
		Select(documentColumns...).
		From(documentTableName).
		Where(sq.Eq{"id": documentID, "session_id": sessionID}).
		Limit(1).
		ToSql()
}

func documentsBySessionIDQuery(sessionID string) (string, []any, error) {
	return psql().
		Select(documentColumns...).
		From(documentTableName).
		Where(sq.Eq{"session_id": sessionID}).
		OrderBy("uploaded_at DESC").
		ToSql()
}

func createDocumentQuery(doc *types.UploadedDocument) (string, []any, error) {
	return psql().
		Insert(documentTableName).
		SetMap(utils.StructToMap(doc)).
		ToSql()
}

func deleteDocumentQuery(sessionID, documentID string) (string, []any, error) {
	return psql().
		Delete(documentTableName).
		Where(sq.Eq{"id": documentID, "session_id": sessionID}).
		ToSql()
}
