package errors

// Error code constants.
// Format: CATEGORY_SPECIFIC_DETAIL
// Frontends map these codes to display messages.

const (
	// ==================== Authentication (AUTH_) ====================
	AuthUnauthorized       = "AUTH_UNAUTHORIZED"
	AuthInvalidCredentials = "AUTH_INVALID_CREDENTIALS"
	AuthTokenExpired       = "AUTH_TOKEN_EXPIRED"
	AuthTokenInvalid       = "AUTH_TOKEN_INVALID"
	AuthTokenRevoked       = "AUTH_TOKEN_REVOKED"
	AuthEmailExists        = "AUTH_EMAIL_EXISTS"
	AuthUsernameExists     = "AUTH_USERNAME_EXISTS"
	AuthResetTokenInvalid  = "AUTH_RESET_TOKEN_INVALID"
	AuthResetTokenExpired  = "AUTH_RESET_TOKEN_EXPIRED"

	// ==================== Authorization (AUTHZ_) ====================
	AuthzForbidden    = "AUTHZ_FORBIDDEN"
	AuthzRoleNotFound = "AUTHZ_ROLE_NOT_FOUND"
	AuthzAdminOnly    = "AUTHZ_ADMIN_ONLY"

	// ==================== Validation (VALIDATION_) ====================
	ValidationInvalidInput = "VALIDATION_INVALID_INPUT"
	ValidationInvalidID    = "VALIDATION_INVALID_ID"
	ValidationInvalidSort  = "VALIDATION_INVALID_SORT"
	ValidationInvalidJob   = "VALIDATION_INVALID_JOB"
	ValidationRequired     = "VALIDATION_REQUIRED"

	// ==================== Resources (RESOURCE_) ====================
	ResourceNotFound      = "RESOURCE_NOT_FOUND"
	ResourceAlreadyExists = "RESOURCE_ALREADY_EXISTS"
	ResourceConflict      = "RESOURCE_CONFLICT"

	// ==================== Catalog (MOVIE_ / CATEGORY_ / PERSON_) ====================
	MovieNotFound      = "MOVIE_NOT_FOUND"
	MovieURLExists     = "MOVIE_URL_EXISTS"
	CategoryNotFound   = "CATEGORY_NOT_FOUND"
	CategoryNameExists = "CATEGORY_NAME_EXISTS"
	PersonNotFound     = "PERSON_NOT_FOUND"
	PersonURLExists    = "PERSON_URL_EXISTS"

	// ==================== Taxonomy (TAXONOMY_ / STAFF_) ====================
	TermNotFound         = "TAXONOMY_TERM_NOT_FOUND"
	TermAlreadyAttached  = "TAXONOMY_TERM_ALREADY_ATTACHED"
	TermNotAttached      = "TAXONOMY_TERM_NOT_ATTACHED"
	StaffAlreadyAssigned = "STAFF_ALREADY_ASSIGNED"
	StaffNotAssigned     = "STAFF_NOT_ASSIGNED"

	// ==================== Reviews and replies (REVIEW_ / REPLY_) ====================
	ReviewNotFound      = "REVIEW_NOT_FOUND"
	ReviewAlreadyExists = "REVIEW_ALREADY_EXISTS"
	ReviewNotOwned      = "REVIEW_NOT_OWNED"
	ReplyNotFound       = "REPLY_NOT_FOUND"
	ReplyNotOwned       = "REPLY_NOT_OWNED"
	ReplyParentInvalid  = "REPLY_PARENT_INVALID"

	// ==================== Reactions (LIKE_) ====================
	LikeAlreadyExists = "LIKE_ALREADY_EXISTS"
	LikeNotFound      = "LIKE_NOT_FOUND"
	LikeInvalidTarget = "LIKE_INVALID_TARGET"

	// ==================== Follow graph (FOLLOW_) ====================
	FollowAlreadyExists = "FOLLOW_ALREADY_EXISTS"
	FollowNotFound      = "FOLLOW_NOT_FOUND"

	// ==================== Notifications (NOTIFICATION_) ====================
	NotificationNotFound = "NOTIFICATION_NOT_FOUND"

	// ==================== Uploads (UPLOAD_) ====================
	UploadInvalidFileType = "UPLOAD_INVALID_FILE_TYPE"
	UploadFileTooLarge    = "UPLOAD_FILE_TOO_LARGE"
	UploadFailed          = "UPLOAD_FAILED"

	// ==================== Internal (INTERNAL_) ====================
	InternalServerError   = "INTERNAL_SERVER_ERROR"
	InternalDatabaseError = "INTERNAL_DATABASE_ERROR"
	InternalExportError   = "INTERNAL_EXPORT_ERROR"
)
