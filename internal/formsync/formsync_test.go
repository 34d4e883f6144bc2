package formsync

import (
	"testing"

	"gnibdocs/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithoutPurpose(t *testing.T) {
	f := New("", "")

	v := f.View()
	assert.Equal(t, NoPurpose, f.State())
	assert.Empty(t, v.CategoryOptions)
	assert.Empty(t, v.Fields)
	assert.False(t, v.Summary.Visible)
}

func TestNewWithPrefilledPurposeFastForwards(t *testing.T) {
	f := New("study", "")

	v := f.View()
	assert.Equal(t, PurposeOnly, f.State())
	assert.Len(t, v.CategoryOptions, 3)
	assert.Empty(t, v.Fields)
	assert.False(t, v.Summary.Visible)
}

func TestNewWithPrefilledPurposeAndCategory(t *testing.T) {
	f := New("work", "employment_permit")

	assert.Equal(t, PurposeAndCategory, f.State())
	assert.Len(t, f.View().Fields, 4)
}

func TestMastersScenario(t *testing.T) {
	f := New("", "")
	f.SelectPurpose("study")
	f.SelectCategory("masters")

	v := f.View()
	require.Equal(t, PurposeAndCategory, v.State)
	require.Len(t, v.Fields, 6)

	assert.Equal(t, types.DocTypePassport, v.Fields[0].DocumentType)
	assert.True(t, v.Fields[0].HasExpiry)
	assert.Equal(t, "document_passport", v.Fields[0].FileInputName)
	assert.Equal(t, "expiry[passport]", v.Fields[0].ExpiryInputName)

	for _, field := range v.Fields[1:] {
		assert.False(t, field.HasExpiry, field.DocumentType)
		assert.Empty(t, field.ExpiryInputName)
	}

	assert.True(t, v.Summary.Visible)
	assert.Equal(t, []string{
		"Passport biometric page",
		"College/School enrolment letter",
		"Proof of fees paid",
		"Scholarship funding proof",
		"Proof course started",
		"Private medical insurance",
	}, v.Summary.Labels)
}

func TestChangingPurposeClearsDerivedState(t *testing.T) {
	f := New("study", "masters")
	require.NotEmpty(t, f.View().Fields)

	f.SelectPurpose("work")

	v := f.View()
	assert.Equal(t, PurposeOnly, v.State)
	assert.Empty(t, v.Category)
	assert.Empty(t, v.Fields)
	assert.False(t, v.Summary.Visible)
	require.Len(t, v.CategoryOptions, 2)
	assert.Equal(t, types.CategoryEmploymentPermit, v.CategoryOptions[0].Value)
}

func TestReselectingSamePurposeStillResets(t *testing.T) {
	f := New("study", "masters")
	f.SelectPurpose("study")

	assert.Equal(t, PurposeOnly, f.State())
	assert.Empty(t, f.View().Fields)
}

func TestClearPurposeFromAnyState(t *testing.T) {
	for _, f := range []*Form{New("", ""), New("study", ""), New("study", "masters")} {
		f.ClearPurpose()

		v := f.View()
		assert.Equal(t, NoPurpose, v.State)
		assert.Empty(t, v.CategoryOptions)
		assert.Empty(t, v.Fields)
		assert.Empty(t, v.Summary.Labels)
	}
}

func TestSelectingEmptyPurposeClears(t *testing.T) {
	f := New("work", "graduate_1g")
	f.SelectPurpose("")

	assert.Equal(t, NoPurpose, f.State())
	assert.Empty(t, f.View().CategoryOptions)
}

func TestSelectCategoryWithoutPurposeIsIgnored(t *testing.T) {
	f := New("", "")
	f.SelectCategory("masters")

	assert.Equal(t, NoPurpose, f.State())
	assert.Empty(t, f.Category())
}

func TestCategoryFromOtherPurposeFallsBack(t *testing.T) {
	f := New("work", "graduate_1g")
	f.SelectCategory("masters")

	v := f.View()
	assert.Equal(t, PurposeOnly, v.State)
	assert.Empty(t, v.Fields)
	assert.Len(t, v.CategoryOptions, 2)
}

func TestViewSlicesAreIndependent(t *testing.T) {
	f := New("work", "graduate_1g")
	v := f.View()
	v.CategoryOptions[0].Label = "changed"

	assert.Equal(t, "Employment Permit Holder (Stamp 1)", New("work", "").View().CategoryOptions[0].Label)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "no_purpose", NoPurpose.String())
	assert.Equal(t, "purpose_only", PurposeOnly.String())
	assert.Equal(t, "purpose_and_category", PurposeAndCategory.String())
}
