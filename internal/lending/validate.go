package lending

import "errors"

// ErrInvalidPatronID is returned whenever a patron identifier is not
// exactly 6 ASCII digits. Leading zeros are significant, so patron ids are
// strings end to end.
var ErrInvalidPatronID = errors.New("patron ID must be exactly 6 digits")

// ErrInvalidISBN is returned whenever an ISBN is not exactly 13 ASCII digits.
var ErrInvalidISBN = errors.New("ISBN must be exactly 13 digits")

const (
	patronIDLength = 6
	isbnLength     = 13
)

// ValidatePatronID checks the 6-digit patron id format. Every public
// engine operation calls this before touching the store or gateway.
func ValidatePatronID(patronID string) error {
	if !isDigits(patronID, patronIDLength) {
		return ErrInvalidPatronID
	}
	return nil
}

// ValidateISBN checks the 13-digit ISBN format.
func ValidateISBN(isbn string) error {
	if !isDigits(isbn, isbnLength) {
		return ErrInvalidISBN
	}
	return nil
}

func isDigits(s string, length int) bool {
	if len(s) != length {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
