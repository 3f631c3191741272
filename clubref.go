package client

import (
	"errors"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var (
	// ErrNoClubReference is returned when free text contains neither a club
	// deep link nor a club ID.
	ErrNoClubReference = errors.New("no club URL or ID found in the provided input")

	// ErrAmbiguousClubReference is returned when free text contains more
	// than one candidate reference.
	ErrAmbiguousClubReference = errors.New("multiple club URLs or IDs found")
)

var clubURLPattern = regexp.MustCompile(`https://campfire\.onelink\.me/[a-zA-Z0-9]+(?:\?\S*)?`)

// ClubReference is a club identifier extracted from free text: a Campfire
// deep link or a club UUID, never both.
type ClubReference struct {
	URL string
	ID  string
}

// IsZero reports whether no reference was found.
func (r ClubReference) IsZero() bool {
	return r.URL == "" && r.ID == ""
}

// ExtractClubReference scans raw text for a campfire.onelink.me deep link
// or a club UUID. Whitespace-separated tokens are examined in order; a deep
// link wins over an ID. Empty input yields a zero reference, and more than
// one candidate yields [ErrAmbiguousClubReference].
func ExtractClubReference(raw string) (ClubReference, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ClubReference{}, nil
	}

	var ref ClubReference
	for _, token := range strings.Fields(raw) {
		if match := clubURLPattern.FindString(token); match != "" {
			if !ref.IsZero() {
				return ClubReference{}, ErrAmbiguousClubReference
			}
			ref.URL = match
			continue
		}

		if _, err := uuid.Parse(token); err == nil {
			if !ref.IsZero() {
				return ClubReference{}, ErrAmbiguousClubReference
			}
			ref.ID = token
		}
	}

	return ref, nil
}
