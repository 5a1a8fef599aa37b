package sanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// strict elimina todo HTML; los textos libres (descripciones, notas) se guardan planos.
var strict = bluemonday.StrictPolicy()

// maxPasses corta entradas con entidades anidadas (&amp;lt;...).
const maxPasses = 4

// Text limpia markup y espacios de borde. Decodifica entidades antes de limpiar,
// así el markup enviado como &lt;tag&gt; también se elimina. La salida queda
// escapada tal como la devuelve bluemonday ("&" => "&amp;").
func Text(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	for i := 0; i < maxPasses; i++ {
		next := strings.TrimSpace(strict.Sanitize(html.UnescapeString(s)))
		if next == s {
			break
		}
		s = next
	}
	return s
}

// TextPtr igual que Text pero preserva nil (campos de PATCH).
func TextPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := Text(*s)
	return &v
}
