// Package gate runs the pre-submission checks on an upload form.
package gate

import (
	"path/filepath"
	"strings"

	"gnibdocs/pkg/types"
)

// MaxFileSizeBytes is the per-file upload limit (5 MiB).
const MaxFileSizeBytes int64 = 5 * 1024 * 1024

var allowedExtensions = map[string]bool{
	"pdf":  true,
	"jpg":  true,
	"jpeg": true,
	"png":  true,
}

type Reason string

const (
	ReasonMissingPurpose  Reason = "missing_purpose"
	ReasonMissingCategory Reason = "missing_category"
	ReasonNoFiles         Reason = "no_files"
	ReasonExtension       Reason = "extension"
	ReasonFileSize        Reason = "file_size"
)

// Error is a vetoed submission. It carries exactly one user facing message.
type Error struct {
	Reason       Reason
	Message      string
	DocumentType types.DocumentType
	FileName     string
}

func (e *Error) Error() string {
	return e.Message
}

// File is one populated file slot.
type File struct {
	DocumentType types.DocumentType
	Name         string
	SizeBytes    int64
}

// Submission is the collected form input at submit time. Empty file slots are not listed.
type Submission struct {
	Purpose  string
	Category string
	Files    []File
}

// AllowedExtension reports whether name ends in pdf, jpg, jpeg or png, ignoring case.
func AllowedExtension(name string) bool {
	ext := strings.TrimPrefix(filepath.Ext(name), ".")
	return allowedExtensions[strings.ToLower(ext)]
}

// Check returns nil when the submission may proceed, or an *Error for the first failing check.
// All extension checks run before any size check.
func Check(sub Submission) error {
	if strings.TrimSpace(sub.Purpose) == "" {
		return &Error{Reason: ReasonMissingPurpose, Message: "Select a purpose."}
	}

	if strings.TrimSpace(sub.Category) == "" {
		return &Error{Reason: ReasonMissingCategory, Message: "Select a category."}
	}

	if len(sub.Files) == 0 {
		return &Error{Reason: ReasonNoFiles, Message: "Choose at least one file."}
	}

	for _, f := range sub.Files {
		if !AllowedExtension(f.Name) {
			return &Error{
				Reason:       ReasonExtension,
				Message:      "Only PDF/JPG/PNG allowed.",
				DocumentType: f.DocumentType,
				FileName:     f.Name,
			}
		}
	}

	for _, f := range sub.Files {
		if f.SizeBytes > MaxFileSizeBytes {
			return &Error{
				Reason:       ReasonFileSize,
				Message:      "File must be under 5MB.",
				DocumentType: f.DocumentType,
				FileName:     f.Name,
			}
		}
	}

	return nil
}
