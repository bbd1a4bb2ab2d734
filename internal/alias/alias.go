// Package alias holds the rules for human-chosen group identifiers: the
// allowed format and the deploy-time set of reserved words.
package alias

import "regexp"

// Lowercase letters and single hyphens, no leading/trailing/doubled hyphens.
var formatPattern = regexp.MustCompile(`^[a-z]+(-[a-z]+)*$`)

// reservedWords are top-level route segments that can never be claimed as
// an alias.
var reservedWords = map[string]struct{}{
	"api":      {},
	"app":      {},
	"about":    {},
	"admin":    {},
	"assets":   {},
	"auth":     {},
	"friends":  {},
	"groups":   {},
	"health":   {},
	"help":     {},
	"home":     {},
	"login":    {},
	"logout":   {},
	"metrics":  {},
	"new":      {},
	"photos":   {},
	"privacy":  {},
	"session":  {},
	"settings": {},
	"share":    {},
	"signup":   {},
	"static":   {},
	"terms":    {},
}

// ValidFormat reports whether candidate is a well-formed alias. Uniqueness
// and the reserved-word check are separate concerns handled at assignment.
func ValidFormat(candidate string) bool {
	return formatPattern.MatchString(candidate)
}

// Reserved reports whether candidate collides with a top-level route.
func Reserved(candidate string) bool {
	_, ok := reservedWords[candidate]
	return ok
}
