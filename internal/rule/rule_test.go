package rule

import (
	"errors"
	"testing"
)

func TestParseCanonicalizes(t *testing.T) {
	cases := map[string]string{
		"B3/S23":    "B3/S23",
		"b3/s23":    "B3/S23",
		"B63/S32":   "B36/S23",
		"B2/S":      "B2/S",
		"B/S012345": "B/S012345",
		" B3/S23 ":  "B3/S23",
	}
	for in, want := range cases {
		r, err := Parse(in)
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", in, err)
		}
		if r.String() != want {
			t.Fatalf("Parse(%q).String() = %q, want %q", in, r.String(), want)
		}
	}
}

func TestParseIdempotent(t *testing.T) {
	for _, s := range []string{"B3/S23", "b63/s32", "B2/S", "B1357/S1357"} {
		first, err := Parse(s)
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", s, err)
		}
		second, err := Parse(first.String())
		if err != nil {
			t.Fatalf("re-parsing %q failed: %v", first.String(), err)
		}
		if second.String() != first.String() {
			t.Fatalf("canonical form drifted: %q -> %q", first.String(), second.String())
		}
	}
}

func TestParseRejectsBadStrings(t *testing.T) {
	bad := []string{
		"", "B3", "B3/S23/x", "S23/B3", "B9/S23", "B3/S29",
		"B33/S23", "B3/S223", "3/23", "Bx/S23", "B3-S23",
	}
	for _, s := range bad {
		if _, err := Parse(s); !errors.Is(err, ErrFormat) {
			t.Fatalf("Parse(%q) = %v, want ErrFormat", s, err)
		}
	}
}

func TestPresetsResolveByName(t *testing.T) {
	r, err := Parse("seeds")
	if err != nil {
		t.Fatalf("preset lookup failed: %v", err)
	}
	if r.Name != "Seeds" || r.String() != "B2/S" {
		t.Fatalf("Parse(\"seeds\") = %q %q", r.Name, r.String())
	}

	if len(Presets()) != 11 {
		t.Fatalf("preset table has %d rules, want 11", len(Presets()))
	}
	for _, p := range Presets() {
		round, err := Parse(p.String())
		if err != nil {
			t.Fatalf("preset %s string %q does not re-parse: %v", p.Name, p.String(), err)
		}
		if round.Name != p.Name {
			t.Fatalf("preset %s not recovered from its own string, got %q", p.Name, round.Name)
		}
	}
}

func TestCustomStringAdoptsPresetInfo(t *testing.T) {
	r, err := Parse("b63/s32")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if r.Name != "Highlife" {
		t.Fatalf("B36/S23 should resolve to Highlife, got %q", r.Name)
	}
}

func TestBornSurvives(t *testing.T) {
	r := Default()
	if !r.Born(3) || r.Born(2) || r.Born(-1) || r.Born(9) {
		t.Fatal("birth set wrong for B3/S23")
	}
	if !r.Survives(2) || !r.Survives(3) || r.Survives(4) {
		t.Fatal("survival set wrong for B3/S23")
	}
}
