// Package validate implements the authoritative per-document checks served by /api/validate
// and re-applied to every stored upload.
package validate

import (
	"errors"
	"strings"
	"time"

	"gnibdocs/internal/requirements"
	"gnibdocs/internal/utils"
	"gnibdocs/pkg/types"

	"github.com/go-playground/validator/v10"
)

const DateLayout = "2006-01-02"

// Request is the body accepted by the validation endpoint.
type Request struct {
	Purpose    string `json:"purpose" validate:"required"`
	Category   string `json:"category" validate:"required"`
	DocType    string `json:"doc_type" validate:"required"`
	ExpiryDate string `json:"expiry_date" validate:"omitempty,datetime=2006-01-02"`
}

// Errors is the ordered list of problems found in a Request.
type Errors []string

func (e Errors) Error() string {
	return strings.Join(e, "; ")
}

var fieldMessages = map[string]map[string]string{
	"Purpose":    {"required": "Select a purpose."},
	"Category":   {"required": "Select a category."},
	"DocType":    {"required": "Select a document type."},
	"ExpiryDate": {"datetime": "Expiry date must be in YYYY-MM-DD format."},
}

type Validator struct {
	validate *validator.Validate
	now      func() time.Time
}

func New() *Validator {
	return &Validator{
		validate: validator.New(),
		now:      time.Now,
	}
}

// Validate collects every problem with req, in field order. A nil result means req is valid.
func (v *Validator) Validate(req Request) Errors {
	errs := Errors{}
	failed := map[string]bool{}

	if err := v.validate.Struct(req); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return Errors{"Invalid request."}
		}
		for _, fe := range fieldErrs {
			failed[fe.StructField()] = true
			errs = append(errs, fieldMessage(fe))
		}
	}

	var (
		purpose     types.Purpose
		purposeOK   bool
		category    types.Category
		categoryOK  bool
		docType     types.DocumentType
		docTypeOK   bool
		domainErrs  = Errors{}
		purposeRaw  = strings.TrimSpace(req.Purpose)
		categoryRaw = strings.TrimSpace(req.Category)
	)

	if !failed["Purpose"] {
		purpose, purposeOK = requirements.ParsePurpose(purposeRaw)
		if !purposeOK {
			domainErrs = append(domainErrs, "Invalid purpose.")
		}
	}

	if !failed["Category"] && purposeOK {
		category, categoryOK = requirements.ParseCategory(purpose, categoryRaw)
		if !categoryOK {
			domainErrs = append(domainErrs, "Invalid category for the selected purpose.")
		}
	}

	if !failed["DocType"] {
		docType, docTypeOK = requirements.ParseDocumentType(req.DocType)
		if !docTypeOK {
			domainErrs = append(domainErrs, "Invalid document type.")
		} else if categoryOK && !requirements.IsRequired(purpose, category, docType) {
			domainErrs = append(domainErrs, "This document is not required for the selected category.")
		}
	}

	if docTypeOK && requirements.IsExpiring(docType) && !failed["ExpiryDate"] {
		if msg := v.expiryProblem(req.ExpiryDate); msg != "" {
			domainErrs = append(domainErrs, msg)
		}
	}

	errs = append(errs, domainErrs...)
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func (v *Validator) expiryProblem(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "Expiry date required for Passport/GNIB."
	}

	expiry, err := time.Parse(DateLayout, raw)
	if err != nil {
		return "Expiry date must be in YYYY-MM-DD format."
	}

	if !NotExpired(expiry, v.now()) {
		return "Document has expired. Upload a document that is still valid."
	}

	return ""
}

// NotExpired reports whether a document expiring on expiry is still valid on now's date.
// A document expiring today is treated as expired.
func NotExpired(expiry, now time.Time) bool {
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	ey, em, ed := expiry.Date()
	return time.Date(ey, em, ed, 0, 0, 0, 0, time.UTC).After(today)
}

// ParseExpiry parses a YYYY-MM-DD date; empty input yields nil.
func ParseExpiry(raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	t, err := time.Parse(DateLayout, raw)
	if err != nil {
		return nil, err
	}
	return utils.TimePtr(t), nil
}

func fieldMessage(fe validator.FieldError) string {
	if msgs, ok := fieldMessages[fe.StructField()]; ok {
		if msg, ok := msgs[fe.Tag()]; ok {
			return msg
		}
	}
	return fe.Error()
}
