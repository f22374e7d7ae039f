// Package phone generates 11-digit Chinese mobile numbers from carrier
// prefix tables and classifies numbers back to their carrier.
// All generation uses crypto/rand via internal/randx.
package phone

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/zarlcorp/infogen/internal/randx"
)

// Carrier identifies a mobile network operator category.
type Carrier string

const (
	Mobile  Carrier = "mobile"
	Unicom  Carrier = "unicom"
	Telecom Carrier = "telecom"
	Virtual Carrier = "virtual"
)

// Display names reported by CarrierName.
const (
	NameMobile         = "中国移动"
	NameUnicom         = "中国联通"
	NameTelecom        = "中国电信"
	NameVirtual        = "虚拟运营商"
	NameUnknownCarrier = "未知运营商"
	NameUnknown        = "未知"
)

// ErrUnsupportedPrefix is returned when an explicit prefix is not in the
// supported prefix list.
var ErrUnsupportedPrefix = errors.New("unsupported prefix")

// numberLen is the length of a Chinese mobile number.
const numberLen = 11

// attemptsPerNumber bounds the retry budget of a unique batch: count
// numbers get count*attemptsPerNumber total draws before truncating.
const attemptsPerNumber = 10

// Generator produces random mobile numbers.
type Generator struct{}

// New creates a generator.
func New() *Generator {
	return &Generator{}
}

// Number generates one 11-digit number. An explicit prefix wins and must
// be in the supported list; otherwise a known carrier restricts the draw
// to its prefixes; otherwise the prefix is drawn uniformly from the full
// list, so carriers are weighted by how many prefixes they own.
func (g *Generator) Number(prefix string, carrier Carrier) (string, error) {
	var chosen string
	switch {
	case prefix != "":
		if !slices.Contains(allPrefixes, prefix) {
			return "", fmt.Errorf("%w: %s", ErrUnsupportedPrefix, prefix)
		}
		chosen = prefix
	case carrier == Mobile:
		chosen = randx.Pick(mobilePrefixes)
	case carrier == Unicom:
		chosen = randx.Pick(unicomPrefixes)
	case carrier == Telecom:
		chosen = randx.Pick(telecomPrefixes)
	case carrier == Virtual:
		chosen = randx.Pick(virtualPrefixes)
	default:
		chosen = randx.Pick(allPrefixes)
	}

	var b strings.Builder
	b.Grow(numberLen)
	b.WriteString(chosen)
	for i := len(chosen); i < numberLen; i++ {
		b.WriteByte(randx.Digit())
	}

	return b.String(), nil
}

// Numbers generates a batch of numbers. With unique set, numbers already
// produced in this batch are discarded and redrawn; once the total
// attempt budget (count*10) is spent the batch is returned short, with
// no error; callers that care must compare lengths. count <= 0 yields
// an empty slice.
func (g *Generator) Numbers(count int, prefix string, carrier Carrier, unique bool) ([]string, error) {
	if count <= 0 {
		return nil, nil
	}

	numbers := make([]string, 0, count)
	var seen map[string]struct{}
	if unique {
		seen = make(map[string]struct{}, count)
	}

	maxAttempts := count * attemptsPerNumber
	for attempts := 0; len(numbers) < count && attempts < maxAttempts; attempts++ {
		n, err := g.Number(prefix, carrier)
		if err != nil {
			return nil, err
		}

		if unique {
			if _, dup := seen[n]; dup {
				continue
			}
			seen[n] = struct{}{}
		}
		numbers = append(numbers, n)
	}

	return numbers, nil
}

// CarrierName classifies a number by its first three characters, checking
// the mobile, unicom, telecom, then virtual lists. Numbers shorter than
// three characters report 未知; unmatched prefixes report 未知运营商.
//
// Only three characters are examined, so numbers built on the
// 4-character "1440" prefix start "144" and come back 未知运营商. Kept
// for compatibility with consumers that rely on these answers.
func (g *Generator) CarrierName(number string) string {
	if len(number) < 3 {
		return NameUnknown
	}

	prefix := number[:3]
	switch {
	case slices.Contains(mobilePrefixes, prefix):
		return NameMobile
	case slices.Contains(unicomPrefixes, prefix):
		return NameUnicom
	case slices.Contains(telecomPrefixes, prefix):
		return NameTelecom
	case slices.Contains(virtualPrefixes, prefix):
		return NameVirtual
	}

	return NameUnknownCarrier
}

// Stats describes the prefix tables. Purely informational.
type Stats struct {
	Total    int      `json:"total"`
	Mobile   int      `json:"mobile"`
	Unicom   int      `json:"unicom"`
	Telecom  int      `json:"telecom"`
	Virtual  int      `json:"virtual"`
	Prefixes []string `json:"prefixes"`
}

// Stats returns the prefix table statistics.
func (g *Generator) Stats() Stats {
	prefixes := make([]string, len(allPrefixes))
	copy(prefixes, allPrefixes)
	return Stats{
		Total:    len(allPrefixes),
		Mobile:   len(mobilePrefixes),
		Unicom:   len(unicomPrefixes),
		Telecom:  len(telecomPrefixes),
		Virtual:  len(virtualPrefixes),
		Prefixes: prefixes,
	}
}

// Prefixes returns the full supported prefix list.
func Prefixes() []string {
	out := make([]string, len(allPrefixes))
	copy(out, allPrefixes)
	return out
}
