package identity

import (
	"net/mail"
	"strings"
)

// NormalizeEmail trims and lowercases an address so it can serve as the
// uniqueness key.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// validEmail accepts plain addr-spec addresses only ("user@host"), not the
// display-name forms mail.ParseAddress would also allow.
func validEmail(email string) bool {
	if email == "" {
		return false
	}
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}
