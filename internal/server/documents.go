package server

import (
	"errors"
	"net/http"
	"strings"

	"gnibdocs/internal/storage"
	"gnibdocs/pkg/types"

	"github.com/sirupsen/logrus"
)

// handlePostDeleteUpload removes one document uploaded in the caller's session. The object
// goes first so a failure leaves the record in place for a retry.
func (s *Service) handlePostDeleteUpload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sess := s.loadSession(r)
	documentID := strings.TrimSpace(r.PathValue("id"))

	logger := s.logger.WithFields(logrus.Fields{
		"session_id":  sess.ID,
		"document_id": documentID,
	})

	doc, err := s.documents.DocumentBySessionAndID(ctx, sess.ID, documentID)
	if err != nil {
		if errors.Is(err, types.ErrDocumentNotFound) {
			s.redirectWithError(w, r, "/uploads", "That document was not found.")
			return
		}
		logger.WithError(err).Error("failed to fetch document")
		s.internalServerError(w)
		return
	}

	logger = logger.WithField("storage_key", doc.StorageKey)

	// never touch an object outside this session's prefix
	if owner, _, _, ok := storage.ParseKey(doc.StorageKey); ok && owner == sess.ID {
		if err := s.storage.Delete(ctx, doc.StorageKey); err != nil {
			logger.WithError(err).Error("failed to delete stored object")
			s.redirectWithError(w, r, "/uploads", "Could not remove that document. Please try again.")
			return
		}
	} else {
		logger.Warn("storage key outside session prefix, keeping object")
	}

	if err := s.documents.DeleteDocument(ctx, sess.ID, doc.ID); err != nil && !errors.Is(err, types.ErrDocumentNotFound) {
		logger.WithError(err).Error("failed to delete document record, object already removed")
		s.internalServerError(w)
		return
	}

	logger.Info("document removed")
	s.redirectWithNotice(w, r, "/uploads", "Document removed.")
}
