package server

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"gnibdocs/internal/formsync"
	"gnibdocs/internal/gate"
	"gnibdocs/internal/storage"
	"gnibdocs/internal/utils"
	"gnibdocs/internal/validate"
	"gnibdocs/pkg/types"

	"github.com/sirupsen/logrus"
)

// multipart parts above this size spill to temporary files
const multipartMemoryBytes = 8 << 20

// pendingUpload is a populated file slot that passed every check.
type pendingUpload struct {
	field  formsync.UploadField
	header *multipart.FileHeader
	expiry *time.Time
}

func (s *Service) handlePostUpload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sess := s.loadSession(r)

	r.Body = http.MaxBytesReader(w, r.Body, s.config.MaxUploadRequestBytes)
	if err := r.ParseMultipartForm(multipartMemoryBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.renderUploadError(w, r, sess, formsync.New("", ""), nil, http.StatusRequestEntityTooLarge, "The upload is too large. Each file must be under 5MB.")
			return
		}
		s.logger.WithError(err).Info("failed to parse multipart form")
		s.renderUploadError(w, r, sess, formsync.New("", ""), nil, http.StatusBadRequest, "The upload could not be read. Please try again.")
		return
	}
	defer func() {
		_ = r.MultipartForm.RemoveAll()
	}()

	var input types.UploadForm
	if err := decoder.Decode(&input, r.PostForm); err != nil {
		s.logger.WithError(err).Info("failed to decode upload form")
		s.renderUploadError(w, r, sess, formsync.New("", ""), nil, http.StatusBadRequest, "The upload could not be read. Please try again.")
		return
	}

	form := formsync.New(input.Purpose, input.Category)
	pending := collectFiles(form.View().Fields, r.MultipartForm)

	submission := gate.Submission{
		Purpose:  string(form.Purpose()),
		Category: string(form.Category()),
	}
	for _, p := range pending {
		submission.Files = append(submission.Files, gate.File{
			DocumentType: p.field.DocumentType,
			Name:         p.header.Filename,
			SizeBytes:    p.header.Size,
		})
	}

	if err := gate.Check(submission); err != nil {
		var vetoed *gate.Error
		if !errors.As(err, &vetoed) {
			s.logger.WithError(err).Error("unexpected submission gate error")
			s.internalServerError(w)
			return
		}

		s.metrics.GateOutcome(string(vetoed.Reason))
		s.logger.WithFields(logrus.Fields{
			"reason":        vetoed.Reason,
			"document_type": vetoed.DocumentType,
			"session_id":    sess.ID,
		}).Info("submission vetoed")
		s.renderUploadError(w, r, sess, form, input.Expiry, http.StatusUnprocessableEntity, vetoed.Message)
		return
	}
	s.metrics.GateOutcome("passed")

	for i := range pending {
		p := &pending[i]
		errs := s.validator.Validate(validate.Request{
			Purpose:    string(form.Purpose()),
			Category:   string(form.Category()),
			DocType:    string(p.field.DocumentType),
			ExpiryDate: input.Expiry[string(p.field.DocumentType)],
		})
		if errs != nil {
			s.metrics.Validation(false)
			s.renderUploadError(w, r, sess, form, input.Expiry, http.StatusUnprocessableEntity, fmt.Sprintf("%s: %s", p.field.Label, errs[0]))
			return
		}
		s.metrics.Validation(true)

		if p.field.HasExpiry {
			expiry, err := validate.ParseExpiry(input.Expiry[string(p.field.DocumentType)])
			if err != nil {
				s.renderUploadError(w, r, sess, form, input.Expiry, http.StatusUnprocessableEntity, "Expiry date must be in YYYY-MM-DD format.")
				return
			}
			p.expiry = expiry
		}
	}

	stored, err := s.storeUploads(ctx, sess, form, pending)
	if err != nil {
		s.logger.WithError(err).WithField("session_id", sess.ID).Error("failed to store uploads")
		s.renderUploadError(w, r, sess, form, input.Expiry, http.StatusInternalServerError, "Could not store your documents. Please try again.")
		return
	}

	sess.Purpose = form.Purpose()
	sess.Category = form.Category()
	if err := s.saveSession(w, sess); err != nil {
		s.logger.WithError(err).WithField("session_id", sess.ID).Error("failed to save session")
		s.discardUploads(ctx, sess.ID, stored)
		s.renderUploadError(w, r, sess, form, input.Expiry, http.StatusInternalServerError, "Could not store your documents. Please try again.")
		return
	}

	s.logger.WithFields(logrus.Fields{
		"session_id": sess.ID,
		"purpose":    sess.Purpose,
		"category":   sess.Category,
		"documents":  len(stored),
	}).Info("documents uploaded")

	s.redirectWithNotice(w, r, "/uploads", fmt.Sprintf("%d document(s) uploaded.", len(stored)))
}

// collectFiles returns the populated file slot for each field, in field order.
func collectFiles(fields []formsync.UploadField, mf *multipart.Form) []pendingUpload {
	pending := make([]pendingUpload, 0)
	if mf == nil {
		return pending
	}

	for _, field := range fields {
		headers := mf.File[field.FileInputName]
		if len(headers) == 0 || strings.TrimSpace(headers[0].Filename) == "" {
			continue
		}
		pending = append(pending, pendingUpload{field: field, header: headers[0]})
	}

	return pending
}

// storeUploads writes every pending file to object storage and records it. Everything written
// before a failure is removed again.
func (s *Service) storeUploads(ctx context.Context, sess *session, form *formsync.Form, pending []pendingUpload) ([]*types.UploadedDocument, error) {
	stored := make([]*types.UploadedDocument, 0, len(pending))
	rollback := func() {
		s.discardUploads(ctx, sess.ID, stored)
	}

	for _, p := range pending {
		doc := &types.UploadedDocument{
			ID:            utils.NanoID(),
			SessionID:     sess.ID,
			Purpose:       form.Purpose(),
			Category:      form.Category(),
			DocumentType:  p.field.DocumentType,
			FileName:      p.header.Filename,
			FileSizeBytes: p.header.Size,
			MimeType:      storage.ContentType(p.header.Filename, p.header.Header.Get("Content-Type")),
			ExpiryDate:    p.expiry,
		}
		doc.StorageKey = storage.BuildKey(sess.ID, doc.DocumentType, doc.ID, doc.FileName)

		if err := s.putObject(ctx, doc, p.header); err != nil {
			rollback()
			return nil, err
		}
		stored = append(stored, doc)

		if err := s.documents.CreateDocument(ctx, doc); err != nil {
			rollback()
			return nil, fmt.Errorf("record document %s: %w", doc.ID, err)
		}
		s.metrics.DocumentStored(string(doc.DocumentType))
	}

	return stored, nil
}

// discardUploads removes the records and objects of an aborted submission. Records that were
// never written are skipped.
func (s *Service) discardUploads(ctx context.Context, sessionID string, docs []*types.UploadedDocument) {
	for _, doc := range docs {
		logger := s.logger.WithFields(logrus.Fields{
			"document_id": doc.ID,
			"storage_key": doc.StorageKey,
		})
		if err := s.documents.DeleteDocument(ctx, sessionID, doc.ID); err != nil && !errors.Is(err, types.ErrDocumentNotFound) {
			logger.WithError(err).Error("failed to remove record after aborted upload")
		}
		if err := s.storage.Delete(ctx, doc.StorageKey); err != nil {
			logger.WithError(err).Error("failed to remove object after aborted upload, object is orphaned")
		}
	}
}

func (s *Service) putObject(ctx context.Context, doc *types.UploadedDocument, header *multipart.FileHeader) error {
	file, err := header.Open()
	if err != nil {
		return fmt.Errorf("open upload %s: %w", header.Filename, err)
	}
	defer file.Close()

	if err := s.storage.Put(ctx, doc.StorageKey, file, doc.FileSizeBytes, doc.MimeType); err != nil {
		return fmt.Errorf("store upload %s: %w", header.Filename, err)
	}

	return nil
}

func (s *Service) renderUploadError(w http.ResponseWriter, r *http.Request, sess *session, form *formsync.Form, expiry map[string]string, status int, msg string) {
	data := s.newUploadPageData(r.Context(), form, sess)
	data.Error = msg
	if expiry != nil {
		data.Expiry = expiry
	}
	s.renderUploadForm(w, r, status, data)
}
