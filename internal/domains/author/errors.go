package author

import "errors"

var (
	ErrNameRequired   = errors.New("author name is required")
	ErrAuthorNotFound = errors.New("author not found")
)

// ToHTTPStatus converts a domain error to its HTTP status code.
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrAuthorNotFound):
		return 404
	case errors.Is(err, ErrNameRequired):
		return 400
	default:
		return 500
	}
}
