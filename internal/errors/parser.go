package errors

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// ErrorInfo pairs an error code with a client-facing message
type ErrorInfo struct {
	Code    string
	Message string
}

// IsNotFound reports whether err is a gorm record-not-found error
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// IsDuplicateKey reports whether err is a unique-constraint violation.
// The constraint, not any prior existence check, is the authoritative
// conflict signal; both postgres and sqlite phrasings are recognized.
func IsDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "unique constraint failed")
}

// ParseError translates a storage error into a code and a message a client
// can act on, without leaking driver internals.
func ParseError(err error, context string) ErrorInfo {
	if err == nil {
		return ErrorInfo{Code: InternalServerError, Message: "an internal error occurred"}
	}

	if IsNotFound(err) {
		return ErrorInfo{Code: ResourceNotFound, Message: notFoundMessage(context)}
	}

	if IsDuplicateKey(err) {
		return parseDuplicateKeyError(err.Error())
	}

	errStr := strings.ToLower(err.Error())
	if strings.Contains(errStr, "foreign key constraint") {
		return ErrorInfo{Code: ResourceNotFound, Message: "a referenced record does not exist"}
	}
	if strings.Contains(errStr, "violates not-null constraint") {
		return ErrorInfo{Code: ValidationRequired, Message: "a required field is missing"}
	}

	return ErrorInfo{Code: InternalServerError, Message: "an internal error occurred, please try again later"}
}

// parseDuplicateKeyError derives a field-specific conflict from the violated
// constraint name or column mentioned in the driver error.
func parseDuplicateKeyError(errStr string) ErrorInfo {
	errLower := strings.ToLower(errStr)

	switch {
	case strings.Contains(errLower, "email"):
		return ErrorInfo{Code: AuthEmailExists, Message: "email is already in use"}
	case strings.Contains(errLower, "username"):
		return ErrorInfo{Code: AuthUsernameExists, Message: "username is already in use"}
	case strings.Contains(errLower, "movies") && strings.Contains(errLower, "url"):
		return ErrorInfo{Code: MovieURLExists, Message: "a movie with this url already exists"}
	case strings.Contains(errLower, "people") && strings.Contains(errLower, "url"):
		return ErrorInfo{Code: PersonURLExists, Message: "a person with this url already exists"}
	case strings.Contains(errLower, "categories"):
		return ErrorInfo{Code: CategoryNameExists, Message: "a category with this name already exists"}
	case strings.Contains(errLower, "idx_user_likeable") || strings.Contains(errLower, "likes"):
		return ErrorInfo{Code: LikeAlreadyExists, Message: "already liked/disliked"}
	case strings.Contains(errLower, "idx_user_movie_review") || strings.Contains(errLower, "reviews"):
		return ErrorInfo{Code: ReviewAlreadyExists, Message: "you have already reviewed this movie"}
	case strings.Contains(errLower, "idx_user_person_follow") || strings.Contains(errLower, "followings"):
		return ErrorInfo{Code: FollowAlreadyExists, Message: "already following this person"}
	case strings.Contains(errLower, "staff"):
		return ErrorInfo{Code: StaffAlreadyAssigned, Message: "person already assigned to this movie with this job"}
	case strings.Contains(errLower, "movie_genres") || strings.Contains(errLower, "movie_keywords") ||
		strings.Contains(errLower, "movie_companies") || strings.Contains(errLower, "movie_languages") ||
		strings.Contains(errLower, "movie_countries"):
		return ErrorInfo{Code: TermAlreadyAttached, Message: "term already attached to this movie"}
	}

	return ErrorInfo{Code: ResourceAlreadyExists, Message: "the record already exists"}
}

func notFoundMessage(context string) string {
	contextLower := strings.ToLower(context)

	switch {
	case strings.Contains(contextLower, "movie"):
		return "movie not found"
	case strings.Contains(contextLower, "category"):
		return "category not found"
	case strings.Contains(contextLower, "person"):
		return "person not found"
	case strings.Contains(contextLower, "user"):
		return "user not found"
	case strings.Contains(contextLower, "review"):
		return "review not found"
	case strings.Contains(contextLower, "reply"):
		return "reply not found"
	case strings.Contains(contextLower, "notification"):
		return "notification not found"
	}
	return "the requested record was not found"
}
