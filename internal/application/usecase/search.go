package usecase

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldSearchTerm pliega el término de búsqueda: recorta espacios y elimina
// tildes/diacríticos (NFD + borrar marcas combinantes + NFC), para que
// "azúcar" y "azucar" encuentren lo mismo. El lado SQL aplica unaccent().
func foldSearchTerm(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(out)
}
