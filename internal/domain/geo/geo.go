// Package geo maps ISO 3166 alpha-2 codes to display names.
package geo

import (
	"strings"

	"github.com/biter777/countries"
)

// Unknown is the placeholder display name for codes the reference
// table does not recognize.
const Unknown = "Unknown"

// Name resolves an alpha-2 country code to its English display name.
// Lookup is case-insensitive; unrecognized codes resolve to Unknown.
func Name(code string) string {
	c := countries.ByName(strings.ToUpper(strings.TrimSpace(code)))
	if c == countries.Unknown {
		return Unknown
	}
	return c.String()
}
