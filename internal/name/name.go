// Package name generates random Chinese full names from static surname
// and given-name tables.
// All generation uses crypto/rand via internal/randx.
package name

import "github.com/zarlcorp/infogen/internal/randx"

// Gender selects which given-name tables a draw uses.
type Gender string

const (
	Boy  Gender = "boy"
	Girl Gender = "girl"
	All  Gender = "all"
)

// doubleProb is the chance a given name uses the two-character table.
const doubleProb = 0.7

// Generator produces random Chinese full names.
type Generator struct{}

// New creates a generator.
func New() *Generator {
	return &Generator{}
}

// Boy generates a random male full name.
func (g *Generator) Boy() string {
	return randx.Pick(surnames) + fragment(boyDouble, boySingle)
}

// Girl generates a random female full name.
func (g *Generator) Girl() string {
	return randx.Pick(surnames) + fragment(girlDouble, girlSingle)
}

// Names generates count full names. Gender All flips a fair coin per
// name, so small batches are not guaranteed to balance. count <= 0
// yields an empty slice. Duplicates across a batch are allowed.
func (g *Generator) Names(count int, gender Gender) []string {
	if count <= 0 {
		return nil
	}

	names := make([]string, 0, count)
	for range count {
		switch gender {
		case Boy:
			names = append(names, g.Boy())
		case Girl:
			names = append(names, g.Girl())
		case All:
			if randx.Intn(2) == 0 {
				names = append(names, g.Boy())
			} else {
				names = append(names, g.Girl())
			}
		}
	}

	return names
}

// fragment draws a given-name fragment: two characters with probability
// doubleProb, one character otherwise.
func fragment(double, single []string) string {
	if randx.Float64() < doubleProb {
		return randx.Pick(double)
	}
	return randx.Pick(single)
}

// Stats describes the name tables and their theoretical combination
// counts. Purely informational.
type Stats struct {
	Surnames   int `json:"surnames"`
	BoyDouble  int `json:"boy_double"`
	BoySingle  int `json:"boy_single"`
	GirlDouble int `json:"girl_double"`
	GirlSingle int `json:"girl_single"`

	Combinations Combinations `json:"combinations"`
}

// Combinations holds surname × fragment-table products. Boy and Girl
// sum the double and single products per gender.
type Combinations struct {
	BoyDouble  int `json:"boy_double"`
	BoySingle  int `json:"boy_single"`
	GirlDouble int `json:"girl_double"`
	GirlSingle int `json:"girl_single"`
	Boy        int `json:"boy"`
	Girl       int `json:"girl"`
}

// Stats returns the table statistics.
func (g *Generator) Stats() Stats {
	return Stats{
		Surnames:   len(surnames),
		BoyDouble:  len(boyDouble),
		BoySingle:  len(boySingle),
		GirlDouble: len(girlDouble),
		GirlSingle: len(girlSingle),
		Combinations: Combinations{
			BoyDouble:  len(surnames) * len(boyDouble),
			BoySingle:  len(surnames) * len(boySingle),
			GirlDouble: len(surnames) * len(girlDouble),
			GirlSingle: len(surnames) * len(girlSingle),
			Boy:        len(surnames) * (len(boyDouble) + len(boySingle)),
			Girl:       len(surnames) * (len(girlDouble) + len(girlSingle)),
		},
	}
}

// Surnames returns the surname table for callers that need to verify
// name composition.
func Surnames() []string {
	out := make([]string, len(surnames))
	copy(out, surnames)
	return out
}
