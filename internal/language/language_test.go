package language

import "testing"

func TestToISO1(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"en", "en"},
		{"  EN  ", "en"},
		{"eng", "en"},
		{"en-US", "en"},
		{"English", "en"},
		{"german", "de"},
		{"deu", "de"},
		{"ja", "ja"},
		{"not a language", ""},
	}
	for _, tc := range cases {
		if got := ToISO1(tc.input); got != tc.want {
			t.Errorf("ToISO1(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestDisplayName(t *testing.T) {
	if got := DisplayName(""); got != "auto" {
		t.Fatalf("empty input: got %q", got)
	}
	if got := DisplayName("en"); got != "English" {
		t.Fatalf("en: got %q", got)
	}
	if got := DisplayName("de"); got != "German" {
		t.Fatalf("de: got %q", got)
	}
}
