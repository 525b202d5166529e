package constants

const (
	ERROR_INPUT          = "Invalid input"
	ERROR_INTERNAL_ERROR = "Internal server error"

	MISSING_LOGIN_INPUT = "Password is required"
	INVALID_PASSWORD    = "Incorrect password"
	MISSING_TOKEN       = "Missing token"
	INVALID_TOKEN       = "Invalid or expired token"

	GUEST_NOT_FOUND = "Guest not found"
	GROUP_NOT_FOUND = "Guest group not found"
	GIFT_NOT_FOUND  = "Gift not found"

	NO_VALID_GIFTS  = "No valid gifts found for checkout"
	CHECKOUT_FAILED = "Failed to create checkout. Please try again."

	DATA_INPUT_IS_NOT_NUMBER = "Id param must be a number"
)

const (
	TOKEN_SUBJECT    = "admin"
	TOKEN_ROLE       = "admin"
	TOKEN_TYPE       = "Bearer"
	TOKEN_TTL_SECOND = 86400
)
