package tags

import "testing"

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"Daily Carry":        "daily-carry",
		"  vintage  ":        "vintage",
		"GOLD   NIB":         "gold-nib",
		"flex":               "flex",
		"":                   "",
		"   ":                "",
		"Groß":               "gross", // case folding, not just lowercasing
		"two\twords\nhere":   "two-words-here",
		"already-normalized": "already-normalized",
	}

	for in, want := range cases {
		if got := Normalize(in); got != want {
			t.Errorf("Normalize(%q) = %q, want %q", in, got, want)
		}
	}
}
