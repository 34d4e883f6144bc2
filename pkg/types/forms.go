package types

// FormQuery is the selection carried on GET / when the purpose or category changes.
type FormQuery struct {
	Purpose  *string `form:"purpose"`
	Category string  `form:"category"`
}

// UploadForm holds the non-file values of a multipart submission. Expiry is keyed by
// document type, posted as expiry[passport]=2030-01-31.
type UploadForm struct {
	Purpose  string            `form:"purpose"`
	Category string            `form:"category"`
	Expiry   map[string]string `form:"expiry"`
}
