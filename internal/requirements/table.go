// Package requirements holds the static purpose/category requirement table and the
// lookups the form and the validators are built on.
package requirements

import "gnibdocs/pkg/types"

type key struct {
	purpose  types.Purpose
	category types.Category
}

type documentDef struct {
	docType  types.DocumentType
	label    string
	expiring bool
}

var purposes = []types.Purpose{
	types.PurposeStudy,
	types.PurposeWork,
}

var purposeLabels = map[types.Purpose]string{
	types.PurposeStudy: "Study",
	types.PurposeWork:  "Work",
}

// Declaration order is the option order shown to the user.
var categoryOptions = map[types.Purpose][]types.CategoryOption{
	types.PurposeStudy: {
		{Value: types.CategoryMasters, Label: "Masters / Higher Education"},
		{Value: types.CategoryUndergraduate, Label: "Undergraduate / Higher Education"},
		{Value: types.CategoryEnglishLanguage, Label: "English Language Student"},
	},
	types.PurposeWork: {
		{Value: types.CategoryEmploymentPermit, Label: "Employment Permit Holder (Stamp 1)"},
		{Value: types.CategoryGraduate1G, Label: "Graduate / Stamp 1G"},
	},
}

var documents = []documentDef{
	{types.DocTypePassport, "Passport biometric page", true},
	{types.DocTypeGNIBCard, "Current IRP / GNIB card (front & back)", true},
	{types.DocTypeCollegeLetter, "College/School enrolment letter", false},
	{types.DocTypeFeesProof, "Proof of fees paid", false},
	{types.DocTypeScholarshipProof, "Scholarship funding proof", false},
	{types.DocTypeCourseStartProof, "Proof course started", false},
	{types.DocTypeInsurance, "Private medical insurance", false},
	{types.DocTypeEmploymentLetter, "Employer letter / contract", false},
	{types.DocTypePayslip, "Recent payslip", false},
	{types.DocTypeBankStatement, "Bank statement", false},
	{types.DocTypeAddressProof, "Proof of address", false},
}

// Order within each entry is render and display order.
var table = map[key][]types.DocumentType{
	{types.PurposeStudy, types.CategoryMasters}: {
		types.DocTypePassport,
		types.DocTypeCollegeLetter,
		types.DocTypeFeesProof,
		types.DocTypeScholarshipProof,
		types.DocTypeCourseStartProof,
		types.DocTypeInsurance,
	},
	{types.PurposeStudy, types.CategoryUndergraduate}: {
		types.DocTypePassport,
		types.DocTypeCollegeLetter,
		types.DocTypeFeesProof,
		types.DocTypeScholarshipProof,
		types.DocTypeInsurance,
	},
	{types.PurposeStudy, types.CategoryEnglishLanguage}: {
		types.DocTypePassport,
		types.DocTypeCollegeLetter,
		types.DocTypeFeesProof,
		types.DocTypeInsurance,
	},
	{types.PurposeWork, types.CategoryEmploymentPermit}: {
		types.DocTypePassport,
		types.DocTypeEmploymentLetter,
		types.DocTypePayslip,
		types.DocTypeInsurance,
	},
	{types.PurposeWork, types.CategoryGraduate1G}: {
		types.DocTypePassport,
		types.DocTypeCollegeLetter,
		types.DocTypeInsurance,
	},
}

var documentIndex = func() map[types.DocumentType]documentDef {
	m := make(map[types.DocumentType]documentDef, len(documents))
	for _, d := range documents {
		m[d.docType] = d
	}
	return m
}()
