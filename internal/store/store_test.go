package store

import (
	"strings"
	"testing"

	"gnibdocs/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentsBySessionIDQuery(t *testing.T) {
	query, args, err := documentsBySessionIDQuery("sess1")
	require.NoError(t, err)

	assert.Equal(t,
		"SELECT "+strings.Join(documentColumns, ", ")+" FROM gnibdocs.uploaded_documents WHERE session_id = $1 ORDER BY uploaded_at DESC",
		query,
	)
	assert.Equal(t, []any{"sess1"}, args)
}

func TestDocumentBySessionAndIDQuery(t *testing.T) {
	query, args, err := documentBySessionAndIDQuery("sess1", "doc1")
	require.NoError(t, err)

	assert.Contains(t, query, "FROM gnibdocs.uploaded_documents")
	assert.Contains(t, query, "id = $1")
	assert.Contains(t, query, "session_id = $2")
	assert.True(t, strings.HasSuffix(query, "LIMIT 1"))
	assert.Equal(t, []any{"doc1", "sess1"}, args)
}

func TestCreateDocumentQueryUsesEveryColumn(t *testing.T) {
	doc := &types.UploadedDocument{
		ID:            "doc1",
		SessionID:     "sess1",
		Purpose:       types.PurposeStudy,
		Category:      types.CategoryMasters,
		DocumentType:  types.DocTypePassport,
		FileName:      "passport.pdf",
		FileSizeBytes: 1024,
		MimeType:      "application/pdf",
		StorageKey:    "uploads/sess1/passport/doc1.pdf",
	}

	query, args, err := createDocumentQuery(doc)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(query, "INSERT INTO gnibdocs.uploaded_documents"))
	for _, col := range documentColumns {
		assert.Contains(t, query, col)
	}
	assert.Len(t, args, len(documentColumns))
}

func TestDocumentColumns(t *testing.T) {
	assert.Equal(t, []string{
		"id", "session_id", "purpose", "category", "document_type", "file_name",
		"file_size_bytes", "mime_type", "storage_key", "expiry_date", "uploaded_at",
	}, documentColumns)
}

func TestAllRequirementsQuery(t *testing.T) {
	query, args, err := allRequirementsQuery()
	require.NoError(t, err)

	assert.Equal(t,
		"SELECT purpose, category, document_type, position, label, expiring FROM gnibdocs.document_requirements ORDER BY purpose ASC, category ASC, position ASC",
		query,
	)
	assert.Empty(t, args)
}

func TestUpdateRequirementQuery(t *testing.T) {
	req := &types.DocumentRequirement{
		Purpose:      types.PurposeWork,
		Category:     types.CategoryGraduate1G,
		DocumentType: types.DocTypeInsurance,
		Position:     3,
		Label:        "Private medical insurance",
	}

	query, args, err := updateRequirementQuery(req)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(query, "UPDATE gnibdocs.document_requirements SET position = $1, label = $2, expiring = $3 WHERE "))
	require.Len(t, args, 6)
	assert.Equal(t, 3, args[0])
	assert.Equal(t, "Private medical insurance", args[1])
	assert.Equal(t, false, args[2])
}

func TestDeleteDocumentQueryIsSessionScoped(t *testing.T) {
	query, args, err := deleteDocumentQuery("sess1", "doc1")
	require.NoError(t, err)

	assert.Equal(t, "DELETE FROM gnibdocs.uploaded_documents WHERE id = $1 AND session_id = $2", query)
	assert.Equal(t, []any{"doc1", "sess1"}, args)
}
