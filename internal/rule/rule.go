// Package rule parses birth/survival rule descriptors and advances boards
// one generation under them.
package rule

import (
	"errors"
	"strings"
)

// ErrFormat reports a rule string that does not match B<digits>/S<digits>.
var ErrFormat = errors.New("malformed rule string")

// Rule describes a two-state automaton: a dead cell with a neighbor count in
// the birth set becomes alive, a live cell with a count in the survival set
// stays alive, every other cell dies. The zero value is not usable; obtain a
// Rule through Parse or Default.
type Rule struct {
	Name        string
	Description string

	birth    [9]bool
	survival [9]bool
	str      string
}

// Default returns the standard Life rule, B3/S23.
func Default() Rule {
	r, _ := Parse("B3/S23")
	return r
}

// String returns the canonical rule string, with digit sets sorted ascending.
func (r Rule) String() string { return r.str }

// Born reports whether a dead cell with n live neighbors becomes alive.
func (r Rule) Born(n int) bool { return n >= 0 && n <= 8 && r.birth[n] }

// Survives reports whether a live cell with n live neighbors stays alive.
func (r Rule) Survives(n int) bool { return n >= 0 && n <= 8 && r.survival[n] }

// Parse resolves a preset name or parses a free-form rule string. The B/S
// markers are case-insensitive, digits are restricted to 0-8 and must be
// duplicate-free; digit order is canonicalized on output. Parsing a rule's
// own canonical string yields the rule unchanged.
func Parse(s string) (Rule, error) {
	trimmed := strings.TrimSpace(s)
	if p, ok := presetByName(trimmed); ok {
		return p, nil
	}

	r, err := compile(trimmed)
	if err != nil {
		return Rule{}, err
	}

	// A custom string that names a known rule adopts its display info.
	if p, ok := presetByString(r.str); ok {
		return p, nil
	}
	return r, nil
}

// compile parses the free-form grammar without consulting the preset table.
func compile(s string) (Rule, error) {
	parts := strings.Split(s, "/")
	if len(parts) != 2 {
		return Rule{}, ErrFormat
	}
	var r Rule
	if err := parseDigitSet(parts[0], 'B', &r.birth); err != nil {
		return Rule{}, err
	}
	if err := parseDigitSet(parts[1], 'S', &r.survival); err != nil {
		return Rule{}, err
	}
	r.str = canonical(r.birth, r.survival)
	return r, nil
}

// parseDigitSet reads one half of a rule string: its marker letter followed
// by a duplicate-free sequence of digits 0-8.
func parseDigitSet(part string, marker byte, set *[9]bool) error {
	if part == "" || part[0] != marker && part[0] != marker+'a'-'A' {
		return ErrFormat
	}
	for i := 1; i < len(part); i++ {
		c := part[i]
		if c < '0' || c > '8' {
			return ErrFormat
		}
		if set[c-'0'] {
			return ErrFormat
		}
		set[c-'0'] = true
	}
	return nil
}

// canonical builds the B<digits>/S<digits> form with digits ascending.
func canonical(birth, survival [9]bool) string {
	var sb strings.Builder
	sb.WriteByte('B')
	for n := 0; n <= 8; n++ {
		if birth[n] {
			sb.WriteByte('0' + byte(n))
		}
	}
	sb.WriteString("/S")
	for n := 0; n <= 8; n++ {
		if survival[n] {
			sb.WriteByte('0' + byte(n))
		}
	}
	return sb.String()
}
