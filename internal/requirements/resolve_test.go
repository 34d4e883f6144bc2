package requirements

import (
	"testing"

	"gnibdocs/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveDeclaredPairs(t *testing.T) {
	cases := []struct {
		purpose  types.Purpose
		category types.Category
		want     []types.DocumentType
	}{
		{types.PurposeStudy, types.CategoryMasters, []types.DocumentType{"passport", "college_letter", "fees_proof", "scholarship_proof", "course_start_proof", "insurance"}},
		{types.PurposeStudy, types.CategoryUndergraduate, []types.DocumentType{"passport", "college_letter", "fees_proof", "scholarship_proof", "insurance"}},
		{types.PurposeStudy, types.CategoryEnglishLanguage, []types.DocumentType{"passport", "college_letter", "fees_proof", "insurance"}},
		{types.PurposeWork, types.CategoryEmploymentPermit, []types.DocumentType{"passport", "employment_letter", "payslip", "insurance"}},
		{types.PurposeWork, types.CategoryGraduate1G, []types.DocumentType{"passport", "college_letter", "insurance"}},
	}

	for _, tc := range cases {
		t.Run(string(tc.purpose)+"/"+string(tc.category), func(t *testing.T) {
			assert.Equal(t, tc.want, Resolve(tc.purpose, tc.category))
		})
	}
}

func TestResolveUnknownPairsAreEmpty(t *testing.T) {
	assert.Empty(t, Resolve("tourism", types.CategoryMasters))
	assert.Empty(t, Resolve(types.PurposeWork, types.CategoryMasters))
	assert.Empty(t, Resolve(types.PurposeStudy, ""))
	assert.Empty(t, Resolve("", ""))
}

func TestResolveReturnsCopy(t *testing.T) {
	docs := Resolve(types.PurposeWork, types.CategoryGraduate1G)
	docs[0] = types.DocTypePayslip

	assert.Equal(t, types.DocTypePassport, Resolve(types.PurposeWork, types.CategoryGraduate1G)[0])
}

func TestEverySelectableCategoryHasRequirements(t *testing.T) {
	for _, p := range Purposes() {
		opts := CategoriesFor(p)
		require.NotEmpty(t, opts, "purpose %s has no categories", p)
		for _, opt := range opts {
			assert.NotEmpty(t, Resolve(p, opt.Value), "%s/%s resolves empty", p, opt.Value)
		}
	}
}

func TestCategoriesForKeepsDeclarationOrder(t *testing.T) {
	study := CategoriesFor(types.PurposeStudy)
	require.Len(t, study, 3)
	assert.Equal(t, types.CategoryMasters, study[0].Value)
	assert.Equal(t, types.CategoryUndergraduate, study[1].Value)
	assert.Equal(t, types.CategoryEnglishLanguage, study[2].Value)

	work := CategoriesFor(types.PurposeWork)
	require.Len(t, work, 2)
	assert.Equal(t, "Employment Permit Holder (Stamp 1)", work[0].Label)
	assert.Equal(t, "Graduate / Stamp 1G", work[1].Label)

	assert.Empty(t, CategoriesFor("tourism"))
}

func TestExpiringDocuments(t *testing.T) {
	for _, doc := range DocumentTypes() {
		want := doc == types.DocTypePassport || doc == types.DocTypeGNIBCard
		assert.Equal(t, want, IsExpiring(doc), doc)
	}
	assert.False(t, IsExpiring("unknown"))
}

func TestLabelFallsBackToIdentifier(t *testing.T) {
	assert.Equal(t, "Passport biometric page", Label(types.DocTypePassport))
	assert.Equal(t, "mystery_doc", Label("mystery_doc"))
}

func TestParse(t *testing.T) {
	p, ok := ParsePurpose(" work ")
	assert.True(t, ok)
	assert.Equal(t, types.PurposeWork, p)

	_, ok = ParsePurpose("tourism")
	assert.False(t, ok)

	c, ok := ParseCategory(types.PurposeStudy, "masters")
	assert.True(t, ok)
	assert.Equal(t, types.CategoryMasters, c)

	_, ok = ParseCategory(types.PurposeWork, "masters")
	assert.False(t, ok)

	d, ok := ParseDocumentType("gnib_card")
	assert.True(t, ok)
	assert.Equal(t, types.DocTypeGNIBCard, d)

	_, ok = ParseDocumentType("driving_licence")
	assert.False(t, ok)
}

func TestIsRequired(t *testing.T) {
	assert.True(t, IsRequired(types.PurposeWork, types.CategoryEmploymentPermit, types.DocTypePayslip))
	assert.False(t, IsRequired(types.PurposeWork, types.CategoryGraduate1G, types.DocTypePayslip))
	assert.False(t, IsRequired("tourism", types.CategoryMasters, types.DocTypePassport))
}

func TestRows(t *testing.T) {
	rows := Rows()
	require.Len(t, rows, 6+5+4+4+3)

	first := rows[0]
	assert.Equal(t, types.PurposeStudy, first.Purpose)
	assert.Equal(t, types.CategoryMasters, first.Category)
	assert.Equal(t, types.DocTypePassport, first.DocumentType)
	assert.Equal(t, 1, first.Position)
	assert.True(t, first.Expiring)

	last := rows[len(rows)-1]
	assert.Equal(t, types.CategoryGraduate1G, last.Category)
	assert.Equal(t, types.DocTypeInsurance, last.DocumentType)
	assert.Equal(t, 3, last.Position)
}
