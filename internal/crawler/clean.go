package crawler

import (
	"regexp"

	"listinglab/internal/model"
)

var (
	// mantém letras, dígitos, pontos e espaços, inclusive os Unicode (U+00A0)
	specialChars = regexp.MustCompile(`[^A-Za-z0-9\p{Z}\s.]+`)
	numericToken = regexp.MustCompile(`\d+\.*\d*`)
)

// CleanText remove caracteres especiais de preços e descontos ("₹1,299" -> "1299").
func CleanText(s string) string {
	return specialChars.ReplaceAllString(s, "")
}

// ExtractNumeric devolve o primeiro número (inteiro ou decimal) do texto, ou o sentinela.
func ExtractNumeric(s string) string {
	if m := numericToken.FindString(s); m != "" {
		return m
	}
	return model.Sentinel
}
