package locale

import "testing"

func TestCapitalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"alice", "Alice"},
		{"BOB", "BOB"},
		{"alice and bob", "Alice and bob"},
		{"élève", "Élève"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Capitalize(tt.in); got != tt.want {
			t.Errorf("Capitalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatChemistry(t *testing.T) {
	tests := []struct {
		parts []string
		want  string
	}{
		{[]string{"chim", "H", "2", "O"}, "H<sub>2</sub>O"},
		{[]string{"chim", "FeCO", "3", ""}, "FeCO<sub>3</sub>"},
		{[]string{"chim"}, ""},
	}
	for _, tt := range tests {
		if got := FormatChemistry(tt.parts); got != tt.want {
			t.Errorf("FormatChemistry(%v) = %q, want %q", tt.parts, got, tt.want)
		}
	}
}

func TestFormatName(t *testing.T) {
	tests := []struct {
		parts []string
		want  string
	}{
		{[]string{"nom w pc", "Aldous", "Huxley"}, "Aldous <span style='font-variant:small-caps'>Huxley</span>"},
		{[]string{"nom w pc", "L. L. Zamenhof"}, "L. L. Zamenhof"},
		{[]string{"nom w pc"}, ""},
	}
	for _, tt := range tests {
		if got := FormatName(tt.parts); got != tt.want {
			t.Errorf("FormatName(%v) = %q, want %q", tt.parts, got, tt.want)
		}
	}
}

func TestFormatSport(t *testing.T) {
	tests := []struct {
		parts []string
		want  string
	}{
		{[]string{"sport"}, "<i>(Sport)</i>"},
		{[]string{"sport", "fr", "collectif"}, "<i>(Sport collectif)</i>"},
	}
	for _, tt := range tests {
		if got := FormatSport(tt.parts); got != tt.want {
			t.Errorf("FormatSport(%v) = %q, want %q", tt.parts, got, tt.want)
		}
	}
}

func TestFormatTerm(t *testing.T) {
	tests := []struct {
		parts []string
		want  string
	}{
		{[]string{"term", ""}, ""},
		{[]string{"term", "foo"}, "<i>(Foo)</i>"},
		{[]string{"term", "Foo"}, "<i>(Foo)</i>"},
		{[]string{"term", "<i>(Foo)</i>"}, "<i>(Foo)</i>"},
	}
	for _, tt := range tests {
		if got := FormatTerm(tt.parts); got != tt.want {
			t.Errorf("FormatTerm(%v) = %q, want %q", tt.parts, got, tt.want)
		}
	}
}

func TestFormatUnit(t *testing.T) {
	if got := FormatUnit([]string{"unité", "92", "%"}); got != "92%" {
		t.Errorf("FormatUnit = %q, want %q", got, "92%")
	}
}

func TestRomanCentury(t *testing.T) {
	tests := []struct {
		parts []string
		want  string
	}{
		{[]string{"siècle2", "12"}, "XIIᵉ"},
		{[]string{"siècle2", "19"}, "XIXᵉ"},
		{[]string{"siècle2", "2020"}, "MMXXᵉ"},
		{[]string{"siècle2", "XIX"}, "XIX"},
		{[]string{"siècle2"}, ""},
	}
	for _, tt := range tests {
		if got := RomanCentury(tt.parts); got != tt.want {
			t.Errorf("RomanCentury(%v) = %q, want %q", tt.parts, got, tt.want)
		}
	}
}

func TestFor(t *testing.T) {
	fr, err := For("fr")
	if err != nil {
		t.Fatalf("For(fr): %v", err)
	}
	if fr.Code != "fr" {
		t.Errorf("Code = %q, want fr", fr.Code)
	}
	if len(fr.SectionPrefixes) == 0 {
		t.Error("French tables must ship section prefixes")
	}
	if fr.PronunciationPattern == nil || fr.GenrePattern == nil {
		t.Error("French tables must ship pronunciation and genre patterns")
	}

	if _, err := For("xx"); err == nil {
		t.Error("For(xx) should fail")
	}
}

func TestFrPatterns(t *testing.T) {
	fr, err := For("fr")
	if err != nil {
		t.Fatalf("For(fr): %v", err)
	}

	code := "'''chat''' {{pron|ʃa|fr}} {{m}}"
	if m := fr.PronunciationPattern.FindStringSubmatch(code); m == nil || m[1] != "ʃa" {
		t.Errorf("pronunciation match = %v, want ʃa", m)
	}
	if m := fr.GenrePattern.FindStringSubmatch(code); m == nil || m[1] != "m" {
		t.Errorf("genre match = %v, want m", m)
	}

	if m := fr.GenrePattern.FindStringSubmatch("{{fr-rég|ʃa}}"); m != nil {
		t.Errorf("genre should not match inside longer template names, got %v", m)
	}
}
