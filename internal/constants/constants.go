package constants

// Context keys
const (
	ContextKeyAdmin = "admin"
)

// Pagination
const (
	DefaultPublicLimit = 20
	DefaultAdminLimit  = 50
	MaxLimit           = 100
)

// Auth
const (
	AdminUsername     = "admin"
	MinPasswordLength = 6
	ResetCodeTTLMin   = 15
)

// Uploads
const (
	MaxUploadSizeBytes = 50 << 20 // 50MB
	UploadURLPrefix    = "/uploads"
)
