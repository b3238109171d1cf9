package i18n

// Error message translation keys.
const (
	// ErrKeyInvalidRequest indicates an invalid request.
	ErrKeyInvalidRequest = "error.invalid_request"
	// ErrKeyInvalidRequestBody indicates an invalid request body.
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	// ErrKeyInternalError indicates an internal server error.
	ErrKeyInternalError = "error.internal_error"
	// ErrKeyUnauthorized indicates missing or invalid authentication.
	ErrKeyUnauthorized = "error.unauthorized"
	// ErrKeyAPIKeyRequired indicates that an API key is required.
	ErrKeyAPIKeyRequired = "error.api_key_required"
	// ErrKeyInvalidAPIKey indicates an invalid API key.
	ErrKeyInvalidAPIKey = "error.invalid_api_key"
	// ErrKeyInvalidToken indicates an invalid or expired bearer token.
	ErrKeyInvalidToken = "error.invalid_token"
	// ErrKeyTokenRequired indicates that a bearer token is required.
	ErrKeyTokenRequired = "error.token_required"
	// ErrKeyNotFound indicates a resource was not found.
	ErrKeyNotFound = "error.not_found"
	// ErrKeyRateLimitExceeded indicates rate limit exceeded.
	ErrKeyRateLimitExceeded = "error.rate_limit_exceeded"
	// ErrKeyTimeout indicates a request timeout.
	ErrKeyTimeout = "error.timeout"
	// ErrKeyValidationItems indicates an empty or invalid item list.
	ErrKeyValidationItems = "error.validation.items"
	// ErrKeyValidationDestination indicates a missing destination country.
	ErrKeyValidationDestination = "error.validation.destination"
	// ErrKeyValidationVariant indicates an unknown shipping method variant.
	ErrKeyValidationVariant = "error.validation.variant"
	// ErrKeyValidationSettings indicates an invalid settings payload.
	ErrKeyValidationSettings = "error.validation.settings"
)
