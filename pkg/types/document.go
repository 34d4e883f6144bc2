package types

import "time"

// Purpose is the applicant's visa pathway.
type Purpose string

const (
	PurposeStudy Purpose = "study"
	PurposeWork  Purpose = "work"
)

// Category narrows a Purpose. A Category is only meaningful together with its Purpose.
type Category string

const (
	CategoryMasters          Category = "masters"
	CategoryUndergraduate    Category = "undergraduate"
	CategoryEnglishLanguage  Category = "english_language"
	CategoryEmploymentPermit Category = "employment_permit"
	CategoryGraduate1G       Category = "graduate_1g"
)

// DocumentType identifies a kind of evidence document.
type DocumentType string

const (
	DocTypePassport         DocumentType = "passport"
	DocTypeGNIBCard         DocumentType = "gnib_card"
	DocTypeCollegeLetter    DocumentType = "college_letter"
	DocTypeFeesProof        DocumentType = "fees_proof"
	DocTypeScholarshipProof DocumentType = "scholarship_proof"
	DocTypeCourseStartProof DocumentType = "course_start_proof"
	DocTypeInsurance        DocumentType = "insurance"
	DocTypeEmploymentLetter DocumentType = "employment_letter"
	DocTypePayslip          DocumentType = "payslip"
	DocTypeBankStatement    DocumentType = "bank_statement"
	DocTypeAddressProof     DocumentType = "address_proof"
)

// UploadedDocument is the stored record of an accepted file
type UploadedDocument struct {
	ID            string       `db:"id" json:"id"`
	SessionID     string       `db:"session_id" json:"sessionId"`
	Purpose       Purpose      `db:"purpose" json:"purpose"`
	Category      Category     `db:"category" json:"category"`
	DocumentType  DocumentType `db:"document_type" json:"documentType"`
	FileName      string       `db:"file_name" json:"fileName"`
	FileSizeBytes int64        `db:"file_size_bytes" json:"fileSizeBytes"`
	MimeType      string       `db:"mime_type" json:"mimeType"`
	StorageKey    string       `db:"storage_key" json:"storageKey"`
	ExpiryDate    *time.Time   `db:"expiry_date" json:"expiryDate,omitempty"`
	UploadedAt    time.Time    `db:"uploaded_at" json:"uploadedAt"`
}
