package mood

import "testing"

func TestScale(t *testing.T) {
	want := map[string]int{Great: 5, Good: 4, Okay: 3, Down: 2, Awful: 1}
	for token, v := range want {
		if got := Scale(token); got != v {
			t.Errorf("Scale(%q) = %d, want %d", token, got, v)
		}
	}
}

func TestScaleUnknownIsNeutral(t *testing.T) {
	for _, token := range []string{"", "🤔", "happy"} {
		if got := Scale(token); got != NeutralScale {
			t.Errorf("Scale(%q) = %d, want %d", token, got, NeutralScale)
		}
	}
}

func TestParse(t *testing.T) {
	cases := map[string]string{
		"😃":      Great,
		"great":  Great,
		" Down ": Down,
		"OK":     Okay,
		"awful":  Awful,
	}
	for in, want := range cases {
		got, err := Parse(in)
		if err != nil {
			t.Errorf("Parse(%q): %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("Parse(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestParseUnknown(t *testing.T) {
	if _, err := Parse("meh"); err == nil {
		t.Error("expected error for unknown mood")
	}
}

func TestAllOrderAndCopy(t *testing.T) {
	got := All()
	if len(got) != 5 || got[0] != Great || got[4] != Awful {
		t.Fatalf("All() = %v", got)
	}
	got[0] = "x"
	if All()[0] != Great {
		t.Error("All() must return a copy")
	}
}
