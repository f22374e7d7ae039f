package phone

import (
	"errors"
	"regexp"
	"slices"
	"strings"
	"testing"
)

var numberRe = regexp.MustCompile(`^\d{11}$`)

func TestNumberShape(t *testing.T) {
	g := New()
	for range 100 {
		n, err := g.Number("", "")
		if err != nil {
			t.Fatalf("Number: %v", err)
		}
		if !numberRe.MatchString(n) {
			t.Fatalf("number %q is not 11 decimal digits", n)
		}
		if !hasKnownPrefix(n) {
			t.Errorf("number %q does not start with a supported prefix", n)
		}
	}
}

func hasKnownPrefix(n string) bool {
	for _, p := range allPrefixes {
		if strings.HasPrefix(n, p) {
			return true
		}
	}
	return false
}

func TestNumberExplicitPrefix(t *testing.T) {
	g := New()
	for range 20 {
		n, err := g.Number("138", "")
		if err != nil {
			t.Fatalf("Number: %v", err)
		}
		if !strings.HasPrefix(n, "138") {
			t.Errorf("number %q does not start with requested prefix 138", n)
		}
	}
}

func TestNumberDataCardPrefix(t *testing.T) {
	g := New()
	n, err := g.Number("1440", "")
	if err != nil {
		t.Fatalf("Number: %v", err)
	}
	if !strings.HasPrefix(n, "1440") || len(n) != 11 {
		t.Errorf("number %q should be 11 digits starting 1440", n)
	}
}

func TestNumberUnsupportedPrefix(t *testing.T) {
	g := New()
	_, err := g.Number("999", "")
	if !errors.Is(err, ErrUnsupportedPrefix) {
		t.Errorf("Number(999) error = %v, want ErrUnsupportedPrefix", err)
	}
}

func TestNumberCarrierRestriction(t *testing.T) {
	g := New()

	tests := []struct {
		carrier Carrier
		list    []string
	}{
		{Mobile, mobilePrefixes},
		{Unicom, unicomPrefixes},
		{Telecom, telecomPrefixes},
		{Virtual, virtualPrefixes},
	}

	for _, tt := range tests {
		t.Run(string(tt.carrier), func(t *testing.T) {
			for range 50 {
				n, err := g.Number("", tt.carrier)
				if err != nil {
					t.Fatalf("Number: %v", err)
				}
				if !slices.Contains(tt.list, n[:3]) {
					t.Errorf("number %q prefix not in %s list", n, tt.carrier)
				}
			}
		})
	}
}

func TestNumbersCount(t *testing.T) {
	g := New()

	got, err := g.Numbers(5, "138", "", true)
	if err != nil {
		t.Fatalf("Numbers: %v", err)
	}
	if len(got) != 5 {
		t.Fatalf("Numbers(5) returned %d", len(got))
	}
	for _, n := range got {
		if !strings.HasPrefix(n, "138") {
			t.Errorf("number %q does not start with 138", n)
		}
	}
}

func TestNumbersUnique(t *testing.T) {
	g := New()

	got, err := g.Numbers(50, "", Mobile, true)
	if err != nil {
		t.Fatalf("Numbers: %v", err)
	}
	if len(got) != 50 {
		t.Fatalf("Numbers(50, unique) returned %d", len(got))
	}

	seen := make(map[string]bool, len(got))
	for _, n := range got {
		if seen[n] {
			t.Errorf("duplicate number %q in unique batch", n)
		}
		seen[n] = true
	}
}

func TestNumbersDuplicatesAllowed(t *testing.T) {
	g := New()
	got, err := g.Numbers(50, "", "", false)
	if err != nil {
		t.Fatalf("Numbers: %v", err)
	}
	if len(got) != 50 {
		t.Errorf("Numbers(50, unique=false) returned %d, want exactly 50", len(got))
	}
}

func TestNumbersZeroAndNegative(t *testing.T) {
	g := New()
	for _, count := range []int{0, -1} {
		got, err := g.Numbers(count, "", "", true)
		if err != nil {
			t.Fatalf("Numbers(%d): %v", count, err)
		}
		if len(got) != 0 {
			t.Errorf("Numbers(%d) returned %d numbers", count, len(got))
		}
	}
}

func TestNumbersInvalidPrefix(t *testing.T) {
	g := New()
	_, err := g.Numbers(3, "000", "", true)
	if !errors.Is(err, ErrUnsupportedPrefix) {
		t.Errorf("Numbers error = %v, want ErrUnsupportedPrefix", err)
	}
}

func TestCarrierNameRoundTrip(t *testing.T) {
	g := New()

	tests := []struct {
		carrier Carrier
		want    string
	}{
		{Mobile, NameMobile},
		{Unicom, NameUnicom},
		{Telecom, NameTelecom},
		{Virtual, NameVirtual},
	}

	for _, tt := range tests {
		t.Run(string(tt.carrier), func(t *testing.T) {
			for range 30 {
				n, err := g.Number("", tt.carrier)
				if err != nil {
					t.Fatalf("Number: %v", err)
				}
				if got := g.CarrierName(n); got != tt.want {
					t.Errorf("CarrierName(%q) = %q, want %q", n, got, tt.want)
				}
			}
		})
	}
}

// The classifier looks at three characters only, so the 4-character
// "1440" prefix is never recognized. This mismatch is long-standing
// behavior and deliberately preserved.
func TestCarrierNameDataCardPrefix(t *testing.T) {
	g := New()
	n, err := g.Number("1440", "")
	if err != nil {
		t.Fatalf("Number: %v", err)
	}
	if got := g.CarrierName(n); got != NameUnknownCarrier {
		t.Errorf("CarrierName(%q) = %q, want %q", n, got, NameUnknownCarrier)
	}
}

func TestCarrierNameShortAndUnknown(t *testing.T) {
	g := New()

	tests := []struct {
		name   string
		number string
		want   string
	}{
		{"empty", "", NameUnknown},
		{"two chars", "13", NameUnknown},
		{"unknown prefix", "99912345678", NameUnknownCarrier},
		{"mobile", "13800000000", NameMobile},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.CarrierName(tt.number); got != tt.want {
				t.Errorf("CarrierName(%q) = %q, want %q", tt.number, got, tt.want)
			}
		})
	}
}

func TestStats(t *testing.T) {
	s := New().Stats()

	if s.Total != len(allPrefixes) {
		t.Errorf("Total = %d, want %d", s.Total, len(allPrefixes))
	}
	if s.Mobile+s.Unicom+s.Telecom+s.Virtual != s.Total-1 {
		// the union carries "1440", which no carrier list claims
		t.Errorf("carrier lists sum to %d, want %d", s.Mobile+s.Unicom+s.Telecom+s.Virtual, s.Total-1)
	}

	s.Prefixes[0] = "mutated"
	if allPrefixes[0] == "mutated" {
		t.Error("Stats returned the backing prefix table, want a copy")
	}
}

// Every per-carrier prefix belongs to exactly one carrier list and to
// the union list.
func TestPrefixTablesPartition(t *testing.T) {
	lists := map[string][]string{
		"mobile":  mobilePrefixes,
		"unicom":  unicomPrefixes,
		"telecom": telecomPrefixes,
		"virtual": virtualPrefixes,
	}

	owner := map[string]string{}
	for name, list := range lists {
		for _, p := range list {
			if prev, dup := owner[p]; dup {
				t.Errorf("prefix %s appears in both %s and %s", p, prev, name)
			}
			owner[p] = name
			if !slices.Contains(allPrefixes, p) {
				t.Errorf("prefix %s (%s) missing from union list", p, name)
			}
		}
	}
}
