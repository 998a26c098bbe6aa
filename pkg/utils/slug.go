package utils

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	invalidSlugChars = regexp.MustCompile(`[^\w\s-]`)
	slugSeparators   = regexp.MustCompile(`[-\s]+`)
)

// Slugify normaliza um nome legível em um identificador amigável para URLs:
// remove acentos, descarta caracteres inválidos, converte para minúsculas e
// troca sequências de espaços e hífens por um único hífen.
func Slugify(value string) string {
	stripped, _, err := transform.String(
		transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC),
		value,
	)
	if err != nil {
		stripped = value
	}

	// Descarta o que sobrou fora do ASCII após a decomposição
	var b strings.Builder
	for _, r := range stripped {
		if r < 128 {
			b.WriteRune(r)
		}
	}

	slug := invalidSlugChars.ReplaceAllString(b.String(), "")
	slug = strings.ToLower(strings.TrimSpace(slug))
	slug = slugSeparators.ReplaceAllString(slug, "-")

	return slug
}
