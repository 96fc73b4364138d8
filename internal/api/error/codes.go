package error

import "net/http"

type ErrorCode string

const (
	UnknownError            ErrorCode = "unknown_error"
	InternalServerError     ErrorCode = "internal_server_error"
	BadRequest              ErrorCode = "bad_request"
	ValidationError         ErrorCode = "validation_error"
	UnsupportedImage        ErrorCode = "unsupported_image"
	PayloadTooLarge         ErrorCode = "payload_too_large"
	InvalidCredentials      ErrorCode = "invalid_credentials"
	AuthenticationRequired  ErrorCode = "authentication_required"
	InvalidAccessToken      ErrorCode = "invalid_access_token"
	ExpiredAccessToken      ErrorCode = "expired_access_token"
	InsufficientPermissions ErrorCode = "insufficient_permissions"
	WeakPassword            ErrorCode = "weak_password"
	InvalidPassword         ErrorCode = "invalid_password"
	EmailConflict           ErrorCode = "email_conflict"
	UsernameConflict        ErrorCode = "username_conflict"
	IngredientConflict      ErrorCode = "ingredient_conflict"
	TagConflict             ErrorCode = "tag_conflict"
	RecipeNotFound          ErrorCode = "recipe_not_found"
	RecipeNotOwned          ErrorCode = "recipe_not_owned"
	IngredientNotFound      ErrorCode = "ingredient_not_found"
	TagNotFound             ErrorCode = "tag_not_found"
	UserNotFound            ErrorCode = "user_not_found"
	AlreadyExists           ErrorCode = "already_exists"
	NotInCollection         ErrorCode = "not_in_collection"
	SelfSubscription        ErrorCode = "self_subscription"
	NotFound                ErrorCode = "not_found"
	MethodNotAllowed        ErrorCode = "method_not_allowed"
	TooManyRequests         ErrorCode = "too_many_requests"
)

var errorCodeToStatusCode = map[ErrorCode]int{
	UnknownError:            0, // No error code - unknown
	InternalServerError:     http.StatusInternalServerError,
	BadRequest:              http.StatusBadRequest,
	ValidationError:         http.StatusBadRequest,
	UnsupportedImage:        http.StatusBadRequest,
	PayloadTooLarge:         http.StatusRequestEntityTooLarge,
	InvalidCredentials:      http.StatusBadRequest,
	AuthenticationRequired:  http.StatusUnauthorized,
	InvalidAccessToken:      http.StatusUnauthorized,
	ExpiredAccessToken:      http.StatusUnauthorized,
	InsufficientPermissions: http.StatusForbidden,
	WeakPassword:            http.StatusBadRequest,
	InvalidPassword:         http.StatusBadRequest,
	EmailConflict:           http.StatusConflict,
	UsernameConflict:        http.StatusConflict,
	IngredientConflict:      http.StatusConflict,
	TagConflict:             http.StatusConflict,
	RecipeNotFound:          http.StatusNotFound,
	RecipeNotOwned:          http.StatusForbidden,
	IngredientNotFound:      http.StatusNotFound,
	TagNotFound:             http.StatusNotFound,
	UserNotFound:            http.StatusNotFound,
	AlreadyExists:           http.StatusBadRequest,
	NotInCollection:         http.StatusBadRequest,
	SelfSubscription:        http.StatusBadRequest,
	NotFound:                http.StatusNotFound,
	MethodNotAllowed:        http.StatusMethodNotAllowed,
	TooManyRequests:         http.StatusTooManyRequests,
}

func (ec ErrorCode) StatusCode() int {
	return errorCodeToStatusCode[ec]
}

func (ec ErrorCode) String() string {
	return string(ec)
}
