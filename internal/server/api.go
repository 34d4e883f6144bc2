package server

import (
	"encoding/json"
	"net/http"

	"gnibdocs/internal/requirements"
	"gnibdocs/internal/validate"
	"gnibdocs/pkg/types"
)

type requirementDocument struct {
	Type     types.DocumentType `json:"type"`
	Label    string             `json:"label"`
	Expiring bool               `json:"expiring"`
}

type requirementsResponse struct {
	Categories []types.CategoryOption `json:"categories"`
	Documents  []requirementDocument  `json:"documents"`
}

type validateSuccess struct {
	Message string `json:"message"`
}

type validateFailure struct {
	Errors []string `json:"errors"`
}

// handleGetRequirements answers category and document lookups for a selection. Unknown
// values produce empty lists rather than an error.
func (s *Service) handleGetRequirements(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	purpose := types.Purpose(q.Get("purpose"))
	category := types.Category(q.Get("category"))

	resp := requirementsResponse{
		Categories: requirements.CategoriesFor(purpose),
		Documents:  make([]requirementDocument, 0),
	}
	for _, doc := range requirements.Resolve(purpose, category) {
		resp.Documents = append(resp.Documents, requirementDocument{
			Type:     doc,
			Label:    requirements.Label(doc),
			Expiring: requirements.IsExpiring(doc),
		})
	}

	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Service) handlePostValidate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<16)

	var req validate.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.logger.WithError(err).Debug("failed to decode validate request")
		s.writeJSON(w, http.StatusBadRequest, validateFailure{Errors: []string{"Invalid request body."}})
		return
	}

	if errs := s.validator.Validate(req); errs != nil {
		s.metrics.Validation(false)
		s.writeJSON(w, http.StatusBadRequest, validateFailure{Errors: errs})
		return
	}

	s.metrics.Validation(true)
	s.writeJSON(w, http.StatusOK, validateSuccess{Message: "Validation passed. Uploading..."})
}

func (s *Service) writeJSON(w http.ResponseWriter, status int, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		s.logger.WithError(err).Error("failed to marshal json response")
		s.internalServerError(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(b)
}
