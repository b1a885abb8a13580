package locale

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Capitalize upper-cases the first letter only, leaving the rest untouched:
// "alice" -> "Alice", "BOB" -> "BOB", "alice and bob" -> "Alice and bob".
func Capitalize(text string) string {
	if text == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(text)
	return string(unicode.ToUpper(r)) + text[size:]
}

// FormatChemistry renders a chemical composition, wrapping numeric tokens in
// subscript tags: ["chim", "H", "2", "O"] -> "H<sub>2</sub>O".
func FormatChemistry(parts []string) string {
	var b strings.Builder
	for _, p := range parts[1:] {
		if p != "" && isDigits(p) {
			b.WriteString("<sub>")
			b.WriteString(p)
			b.WriteString("</sub>")
		} else {
			b.WriteString(p)
		}
	}
	return b.String()
}

// FormatName renders a person's name with the family name in small caps:
// ["nom w pc", "Aldous", "Huxley"] ->
// "Aldous <span style='font-variant:small-caps'>Huxley</span>".
// A single argument is returned as-is.
func FormatName(parts []string) string {
	if len(parts) < 2 {
		return ""
	}
	res := parts[1]
	if len(parts) > 2 {
		res += " <span style='font-variant:small-caps'>" + parts[2] + "</span>"
	}
	return res
}

// FormatSport renders a sport label, keeping an optional qualifier:
// ["sport"] -> "<i>(Sport)</i>", ["sport", "fr", "collectif"] ->
// "<i>(Sport collectif)</i>".
func FormatSport(parts []string) string {
	res := "<i>(" + Capitalize(parts[0])
	if len(parts) >= 3 {
		res += " " + parts[2]
	}
	return res + ")</i>"
}

// FormatTerm renders a term parenthetical, idempotent on already-formatted
// input: ["term", "foo"] -> "<i>(Foo)</i>".
func FormatTerm(parts []string) string {
	if len(parts) < 2 || parts[1] == "" {
		return ""
	}
	if strings.HasPrefix(parts[1], "<i>(") {
		return parts[1]
	}
	return "<i>(" + Capitalize(parts[1]) + ")</i>"
}

// FormatUnit joins a measure and its unit without separator:
// ["unité", "92", "%"] -> "92%".
func FormatUnit(parts []string) string {
	return strings.Join(parts[1:], "")
}

// RomanCentury renders a century ordinal with a roman numeral:
// ["siècle2", "19"] -> "XIXᵉ". A non-numeric argument is kept as-is.
func RomanCentury(parts []string) string {
	if len(parts) < 2 {
		return ""
	}
	n, err := strconv.Atoi(parts[1])
	if err != nil || n <= 0 {
		return parts[1]
	}
	return romanNumeral(n) + "ᵉ"
}

func romanNumeral(n int) string {
	values := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	symbols := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var b strings.Builder
	for i, v := range values {
		for n >= v {
			b.WriteString(symbols[i])
			n -= v
		}
	}
	return b.String()
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
