package orders

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/kirana-api/internal/domain/entity"
)

// normalizer descompone, elimina diacríticos y recompone, para que "Azúcar"
// y "azucar" se comparen iguales.
var normalizer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// normalizeName canonicaliza un nombre de producto para comparación: sin
// tildes, minúsculas y sin espacios sobrantes.
func normalizeName(s string) string {
	out, _, err := transform.String(normalizer, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(strings.TrimSpace(out))
}

// matchProduct busca un producto por nombre con comparación canónica;
// devuelve nil si no hay coincidencia.
func matchProduct(products []*entity.Product, name string) *entity.Product {
	want := normalizeName(name)
	if want == "" {
		return nil
	}
	for _, p := range products {
		if normalizeName(p.Name) == want {
			return p
		}
	}
	return nil
}

// matchProductInText busca un nombre de producto contenido en un texto libre
// ("cuánto vale el arroz?"). Si varios nombres aparecen gana el más largo,
// para que "rice flour" no se resuelva como "rice".
func matchProductInText(products []*entity.Product, text string) *entity.Product {
	haystack := normalizeName(text)
	if haystack == "" {
		return nil
	}
	var best *entity.Product
	bestLen := 0
	for _, p := range products {
		name := normalizeName(p.Name)
		if name == "" || len(name) <= bestLen {
			continue
		}
		if strings.Contains(haystack, name) {
			best = p
			bestLen = len(name)
		}
	}
	return best
}
