// Package ident generates the short identifiers given to every new entity.
package ident

import (
	"strings"

	"github.com/google/uuid"
)

// Length is the number of characters of an identifier.
const Length = 10

// New returns a fresh lowercase alphanumeric token taken from a random UUID.
func New() string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return id[:Length]
}
