package server

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"gnibdocs/internal/formsync"
	"gnibdocs/internal/gate"
	"gnibdocs/internal/requirements"
	"gnibdocs/pkg/types"
)

type BasePageData struct {
	Title  string
	Notice string
	Error  string
}

type PurposeOption struct {
	Value    types.Purpose
	Label    string
	Selected bool
}

type UploadPageData struct {
	BasePageData
	Purposes         []PurposeOption
	Form             formsync.View
	Expiry           map[string]string
	AcceptExtensions string
	MaxFileSizeBytes int64
	UploadedCount    int
}

type UploadsPageData struct {
	BasePageData
	Purpose   types.Purpose
	Category  types.Category
	Documents []*types.UploadedDocument
}

func (s *Service) handleGetUploadForm(w http.ResponseWriter, r *http.Request) {
	sess := s.loadSession(r)

	var query types.FormQuery
	if err := decoder.Decode(&query, r.URL.Query()); err != nil {
		s.logger.WithError(err).Debug("failed to decode form query")
	}

	// Without an explicit purpose in the query the session's last selection is the
	// prefilled default.
	purpose, category := string(sess.Purpose), string(sess.Category)
	if query.Purpose != nil {
		purpose, category = *query.Purpose, query.Category
	}

	form := formsync.New(purpose, category)

	data := s.newUploadPageData(r.Context(), form, sess)
	data.Notice = strings.TrimSpace(r.URL.Query().Get("notice"))
	data.Error = strings.TrimSpace(r.URL.Query().Get("error"))

	s.renderUploadForm(w, r, http.StatusOK, data)
}

func (s *Service) newUploadPageData(ctx context.Context, form *formsync.Form, sess *session) *UploadPageData {
	purposes := make([]PurposeOption, 0)
	for _, p := range requirements.Purposes() {
		purposes = append(purposes, PurposeOption{
			Value:    p,
			Label:    requirements.PurposeLabel(p),
			Selected: p == form.Purpose(),
		})
	}

	return &UploadPageData{
		BasePageData:     BasePageData{Title: "Upload Documents"},
		Purposes:         purposes,
		Form:             form.View(),
		Expiry:           map[string]string{},
		AcceptExtensions: ".pdf,.jpg,.jpeg,.png",
		MaxFileSizeBytes: gate.MaxFileSizeBytes,
		UploadedCount:    s.uploadedCount(ctx, sess),
	}
}

// uploadedCount is informational only, so a lookup failure renders as zero.
func (s *Service) uploadedCount(ctx context.Context, sess *session) int {
	docs, err := s.documents.DocumentsBySessionID(ctx, sess.ID)
	if err != nil {
		s.logger.WithError(err).WithField("session_id", sess.ID).Warn("failed to count session documents")
		return 0
	}
	return len(docs)
}

func (s *Service) renderUploadForm(w http.ResponseWriter, r *http.Request, status int, data *UploadPageData) {
	if err := s.renderTemplate(w, r, status, "page.upload", data); err != nil {
		s.logger.WithError(err).Error("failed to render upload page")
		s.internalServerError(w)
	}
}

func (s *Service) handleGetUploads(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sess := s.loadSession(r)

	docs, err := s.documents.DocumentsBySessionID(ctx, sess.ID)
	if err != nil {
		s.logger.WithError(err).WithField("session_id", sess.ID).Error("failed to fetch session documents")
		s.internalServerError(w)
		return
	}

	data := &UploadsPageData{
		BasePageData: BasePageData{
			Title:  "Uploaded Documents",
			Notice: strings.TrimSpace(r.URL.Query().Get("notice")),
			Error:  strings.TrimSpace(r.URL.Query().Get("error")),
		},
		Purpose:   sess.Purpose,
		Category:  sess.Category,
		Documents: docs,
	}

	if err := s.renderTemplate(w, r, http.StatusOK, "page.uploads", data); err != nil {
		s.logger.WithError(err).Error("failed to render uploads page")
		s.internalServerError(w)
		return
	}
}

func (s *Service) handlePostReset(w http.ResponseWriter, r *http.Request) {
	s.clearSession(w)
	s.redirectWithNotice(w, r, "/", "Started a new submission.")
}

func (s *Service) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Service) redirectWithNotice(w http.ResponseWriter, r *http.Request, path, notice string) {
	v := url.Values{}
	v.Set("notice", notice)
	http.Redirect(w, r, path+"?"+v.Encode(), http.StatusSeeOther)
}

func (s *Service) redirectWithError(w http.ResponseWriter, r *http.Request, path, msg string) {
	v := url.Values{}
	v.Set("error", msg)
	http.Redirect(w, r, path+"?"+v.Encode(), http.StatusSeeOther)
}

func (s *Service) internalServerError(w http.ResponseWriter) {
	http.Error(w, "internal server error", http.StatusInternalServerError)
}
