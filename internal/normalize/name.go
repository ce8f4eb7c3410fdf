package normalize

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Name returns the lookup key for a player name: surrounding and repeated
// whitespace removed, NFC composed and case folded.
func Name(name string) string {
	name = strings.Join(strings.Fields(name), " ")
	name = norm.NFC.String(name)
	return cases.Fold().String(name)
}
