package header

import (
	"fmt"

	"github.com/zostay/go-addr/pkg/addr"
)

// FormatAddressList parses a comma separated list of mailboxes and groups and
// returns it in canonical form, suitable for the body of a From, To, or Cc
// field.
func FormatAddressList(body string) (string, error) {
	al, err := addr.ParseEmailAddressList(body)
	if err != nil {
		return "", fmt.Errorf("unable to parse address list %q: %w", body, err)
	}
	return al.String(), nil
}
