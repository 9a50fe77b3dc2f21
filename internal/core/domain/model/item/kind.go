package item

import (
	"fmt"

	"shop/internal/pkg/errs"
)

// Kind is the closed set of sellable item categories.
// It replaces a subtype hierarchy with a tagged variant: all kinds share the
// same price and stock behavior, so no kind carries extra fields.
type Kind int

const (
	// KindUnknown represents an invalid or undefined kind.
	// This value (0) helps catch uninitialized Kind values.
	KindUnknown Kind = iota

	// KindBook is printed media.
	KindBook

	// KindAlbum is recorded music.
	KindAlbum

	// KindMovie is video media.
	KindMovie
)

func getKindStrings() map[Kind]string {
	return map[Kind]string{
		KindUnknown: "Unknown",
		KindBook:    "Book",
		KindAlbum:   "Album",
		KindMovie:   "Movie",
	}
}

func getValidKindStrings() map[Kind]string {
	//nolint:exhaustive // KindUnknown is intentionally excluded as it's invalid
	return map[Kind]string{
		KindBook:  "Book",
		KindAlbum: "Album",
		KindMovie: "Movie",
	}
}

// Validate checks if the Kind value is a member of the closed set.
// KindUnknown (0) and any other values are invalid.
func (k Kind) Validate() error {
	if _, ok := getValidKindStrings()[k]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("kind is invalid", fmt.Errorf("%d is not a valid kind", k))
	}
	return nil
}

// String returns the human-readable name of the kind.
// Implements the fmt.Stringer interface and is safe to call on any Kind value.
func (k Kind) String() string {
	if str, ok := getKindStrings()[k]; ok {
		return str
	}
	return "Unknown"
}

// KindFromString parses a Kind from its string representation.
// Used when accepting kinds from external input such as HTTP requests.
func KindFromString(s string) (Kind, error) {
	for kind, str := range getValidKindStrings() {
		if str == s {
			return kind, nil
		}
	}
	return KindUnknown, errs.NewValueIsInvalidErrorWithCause(
		"kind is invalid",
		fmt.Errorf("%q is not a valid kind", s),
	)
}
