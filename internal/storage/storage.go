// Package storage writes uploaded documents to object storage.
package storage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gnibdocs/pkg/types"
)

// Store is an object storage backend for uploaded documents.
type Store interface {
	Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) error
	Delete(ctx context.Context, key string) error
}

// BuildKey constructs the object key for a document uploaded in a session.
func BuildKey(sessionID string, docType types.DocumentType, documentID, fileName string) string {
	ext := strings.ToLower(filepath.Ext(fileName))
	return fmt.Sprintf("uploads/%s/%s/%s%s", sessionID, docType, documentID, ext)
}

// ParseKey extracts the session, document type and document ID from a key made by BuildKey.
func ParseKey(key string) (sessionID string, docType types.DocumentType, documentID string, ok bool) {
	parts := strings.Split(key, "/")
	if len(parts) != 4 || parts[0] != "uploads" {
		return "", "", "", false
	}
	name := parts[3]
	return parts[1], types.DocumentType(parts[2]), strings.TrimSuffix(name, filepath.Ext(name)), true
}

// ContentType picks the stored content type from the file extension. The browser supplied
// header is only used when the extension is not one we know.
func ContentType(fileName, declared string) string {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(fileName), ".")) {
	case "pdf":
		return "application/pdf"
	case "jpg", "jpeg":
		return "image/jpeg"
	case "png":
		return "image/png"
	}
	if declared != "" {
		return declared
	}
	return "application/octet-stream"
}
