package requirements

import (
	"strings"

	"gnibdocs/pkg/types"
)

// Resolve returns the documents required for purpose and category, in display order.
// Unknown purposes, or categories that do not belong to purpose, resolve to an empty slice.
func Resolve(purpose types.Purpose, category types.Category) []types.DocumentType {
	docs := table[key{purpose, category}]
	out := make([]types.DocumentType, len(docs))
	copy(out, docs)
	return out
}

// CategoriesFor returns the selectable categories under purpose in declaration order.
func CategoriesFor(purpose types.Purpose) []types.CategoryOption {
	opts := categoryOptions[purpose]
	out := make([]types.CategoryOption, len(opts))
	copy(out, opts)
	return out
}

// Purposes returns every purpose in declaration order.
func Purposes() []types.Purpose {
	out := make([]types.Purpose, len(purposes))
	copy(out, purposes)
	return out
}

// DocumentTypes returns every known document type in declaration order.
func DocumentTypes() []types.DocumentType {
	out := make([]types.DocumentType, 0, len(documents))
	for _, d := range documents {
		out = append(out, d.docType)
	}
	return out
}

func PurposeLabel(purpose types.Purpose) string {
	if label, ok := purposeLabels[purpose]; ok {
		return label
	}
	return string(purpose)
}

func CategoryLabel(purpose types.Purpose, category types.Category) string {
	for _, opt := range categoryOptions[purpose] {
		if opt.Value == category {
			return opt.Label
		}
	}
	return string(category)
}

// Label returns the display label for doc, falling back to the raw identifier.
func Label(doc types.DocumentType) string {
	if d, ok := documentIndex[doc]; ok {
		return d.label
	}
	return string(doc)
}

// IsExpiring reports whether doc needs an accompanying expiry date.
func IsExpiring(doc types.DocumentType) bool {
	return documentIndex[doc].expiring
}

// IsRequired reports whether doc is part of the requirement list for purpose and category.
func IsRequired(purpose types.Purpose, category types.Category, doc types.DocumentType) bool {
	for _, d := range table[key{purpose, category}] {
		if d == doc {
			return true
		}
	}
	return false
}

func ParsePurpose(raw string) (types.Purpose, bool) {
	p := types.Purpose(strings.TrimSpace(raw))
	_, ok := categoryOptions[p]
	return p, ok
}

// ParseCategory accepts raw only when it names a category of purpose.
func ParseCategory(purpose types.Purpose, raw string) (types.Category, bool) {
	c := types.Category(strings.TrimSpace(raw))
	for _, opt := range categoryOptions[purpose] {
		if opt.Value == c {
			return c, true
		}
	}
	return c, false
}

func ParseDocumentType(raw string) (types.DocumentType, bool) {
	d := types.DocumentType(strings.TrimSpace(raw))
	_, ok := documentIndex[d]
	return d, ok
}

// Rows flattens the table into one row per required document, purposes and categories in
// declaration order.
func Rows() []types.DocumentRequirement {
	rows := make([]types.DocumentRequirement, 0)
	for _, p := range purposes {
		for _, opt := range categoryOptions[p] {
			for i, doc := range table[key{p, opt.Value}] {
				rows = append(rows, types.DocumentRequirement{
					Purpose:      p,
					Category:     opt.Value,
					DocumentType: doc,
					Position:     i + 1,
					Label:        Label(doc),
					Expiring:     IsExpiring(doc),
				})
			}
		}
	}
	return rows
}
