package geo

import (
	"errors"
	"strings"

	"github.com/ticoship/rate-service/internal/domain/model"
)

var (
	// ErrUnknownAddress is returned when a state/city pair has no known
	// postal code.
	ErrUnknownAddress = errors.New("geo: no postal code for address")
	// ErrInvalidPostcode is returned for codes that are not 5 digits.
	ErrInvalidPostcode = errors.New("geo: invalid postal code")
)

// Resolver resolves incomplete destination data. Deployments may swap the
// table-backed implementation for the carrier's own address web service.
type Resolver interface {
	// PostcodeFor derives a postal code from a province and canton name.
	PostcodeFor(state, city string) (string, error)
	// LocationFor splits a postal code into its province, canton and
	// district components.
	LocationFor(postcode string) (model.Location, error)
}

// TableResolver resolves addresses against the embedded postal dataset.
type TableResolver struct{}

// NewTableResolver returns a Resolver backed by the embedded tables.
func NewTableResolver() *TableResolver {
	return &TableResolver{}
}

// PostcodeFor looks up the canton's seat district code by name. Matching
// is case- and accent-insensitive.
func (r *TableResolver) PostcodeFor(state, city string) (string, error) {
	key := foldName(state) + "|" + foldName(city)
	if code, ok := cantonCodes[key]; ok {
		return code, nil
	}
	return "", ErrUnknownAddress
}

// LocationFor parses the positional PCCDD layout: one province digit, two
// canton digits, two district digits.
func (r *TableResolver) LocationFor(postcode string) (model.Location, error) {
	if len(postcode) != 5 {
		return model.Location{}, ErrInvalidPostcode
	}
	for _, c := range postcode {
		if c < '0' || c > '9' {
			return model.Location{}, ErrInvalidPostcode
		}
	}
	return model.Location{
		Province: postcode[0:1],
		Canton:   postcode[1:3],
		District: postcode[3:5],
	}, nil
}

// foldName lowercases a place name and strips the accents used in Spanish
// toponyms so "San José" and "san jose" hit the same table entry.
func foldName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	replacer := strings.NewReplacer(
		"á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u", "ü", "u", "ñ", "n",
	)
	return replacer.Replace(s)
}
