// Package formsync derives the upload form's state from the current purpose and category
// selection. Every transition rebuilds the derived view from scratch.
package formsync

import (
	"fmt"

	"gnibdocs/internal/requirements"
	"gnibdocs/pkg/types"
)

type State int

const (
	NoPurpose State = iota
	PurposeOnly
	PurposeAndCategory
)

func (s State) String() string {
	switch s {
	case NoPurpose:
		return "no_purpose"
	case PurposeOnly:
		return "purpose_only"
	case PurposeAndCategory:
		return "purpose_and_category"
	default:
		return "unknown"
	}
}

// UploadField is the input group rendered for one required document.
type UploadField struct {
	DocumentType    types.DocumentType
	Label           string
	FileInputName   string
	HasExpiry       bool
	ExpiryInputName string
}

// Summary is the human readable list of required documents.
type Summary struct {
	Visible bool
	Labels  []string
}

// View is everything the page renders for the current selection.
type View struct {
	State           State
	Purpose         types.Purpose
	Category        types.Category
	CategoryOptions []types.CategoryOption
	Fields          []UploadField
	Summary         Summary
}

// Form tracks the selection for one form-rendering session.
type Form struct {
	state    State
	purpose  types.Purpose
	category types.Category
	view     View
}

// New builds the initial form. A prefilled purpose fast-forwards to PurposeOnly and a
// prefilled category that belongs to it continues to PurposeAndCategory.
func New(purpose, category string) *Form {
	f := &Form{}
	f.rebuild()
	if purpose == "" {
		return f
	}

	f.SelectPurpose(purpose)
	if category != "" {
		f.SelectCategory(category)
	}

	return f
}

func (f *Form) State() State {
	return f.state
}

func (f *Form) Purpose() types.Purpose {
	return f.purpose
}

func (f *Form) Category() types.Category {
	return f.category
}

// View returns the view derived on the last transition.
func (f *Form) View() View {
	return f.view
}

// SelectPurpose moves to PurposeOnly and resets everything derived from the category.
// An empty or unknown purpose is treated as clearing the selection.
func (f *Form) SelectPurpose(raw string) {
	purpose, ok := requirements.ParsePurpose(raw)
	if !ok {
		f.ClearPurpose()
		return
	}

	f.state = PurposeOnly
	f.purpose = purpose
	f.category = ""
	f.rebuild()
}

// SelectCategory moves to PurposeAndCategory. It has no effect without a purpose, and a
// category that does not belong to the purpose drops back to PurposeOnly.
func (f *Form) SelectCategory(raw string) {
	if f.state == NoPurpose {
		return
	}

	category, ok := requirements.ParseCategory(f.purpose, raw)
	if !ok {
		f.state = PurposeOnly
		f.category = ""
		f.rebuild()
		return
	}

	f.state = PurposeAndCategory
	f.category = category
	f.rebuild()
}

func (f *Form) ClearPurpose() {
	f.state = NoPurpose
	f.purpose = ""
	f.category = ""
	f.rebuild()
}

func (f *Form) rebuild() {
	f.view = Derive(f.state, f.purpose, f.category)
}

// Derive computes the view for a selection without any retained state.
func Derive(state State, purpose types.Purpose, category types.Category) View {
	v := View{
		State:           state,
		Purpose:         purpose,
		Category:        category,
		CategoryOptions: []types.CategoryOption{},
		Fields:          []UploadField{},
		Summary:         Summary{Labels: []string{}},
	}

	if state == NoPurpose {
		return v
	}

	v.CategoryOptions = requirements.CategoriesFor(purpose)

	// With only a purpose the summary is best effort; Resolve yields nothing until a
	// category is chosen, which keeps the summary hidden.
	docs := requirements.Resolve(purpose, category)
	for _, doc := range docs {
		v.Fields = append(v.Fields, NewUploadField(doc))
		v.Summary.Labels = append(v.Summary.Labels, requirements.Label(doc))
	}
	v.Summary.Visible = len(v.Summary.Labels) > 0

	return v
}

func NewUploadField(doc types.DocumentType) UploadField {
	field := UploadField{
		DocumentType:  doc,
		Label:         requirements.Label(doc),
		FileInputName: FileFieldName(doc),
	}
	if requirements.IsExpiring(doc) {
		field.HasExpiry = true
		field.ExpiryInputName = ExpiryFieldName(doc)
	}
	return field
}

// FileFieldName is the multipart field carrying the file for doc.
func FileFieldName(doc types.DocumentType) string {
	return fmt.Sprintf("document_%s", doc)
}

// ExpiryFieldName is the form field carrying the expiry date for doc.
func ExpiryFieldName(doc types.DocumentType) string {
	return fmt.Sprintf("expiry[%s]", doc)
}
