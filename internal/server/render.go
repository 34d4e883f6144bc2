package server

import (
	"bytes"
	"net/http"
)

// renderTemplate buffers the named template before writing it with status.
func (s *Service) renderTemplate(w http.ResponseWriter, r *http.Request, status int, templateName string, data any) error {
	var buf bytes.Buffer
	if err := s.templates.ExecuteTemplate(&buf, templateName, data); err != nil {
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}
