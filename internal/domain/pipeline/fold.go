package pipeline

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold normaliza una cadena para comparación: quita diacríticos y pasa a
// mayúsculas, de modo que "Evaluación" y "EVALUACION" coincidan.
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToUpper(out)
}

// foldContains indica si s contiene substr, ignorando mayúsculas y acentos.
func foldContains(s, substr string) bool {
	return strings.Contains(Fold(s), Fold(substr))
}
