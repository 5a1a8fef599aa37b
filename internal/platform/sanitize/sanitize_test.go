package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestText_StripsMarkup(t *testing.T) {
	assert.Equal(t, "Friendly dog", Text("  <b>Friendly</b> dog<script>alert(1)</script> "))
	assert.Equal(t, "", Text("   "))
}

func TestText_StripsEntityEncodedMarkup(t *testing.T) {
	assert.Equal(t, "", Text("&lt;script&gt;alert(1)&lt;/script&gt;"))
	assert.Equal(t, "hi", Text("&lt;b&gt;hi&lt;/b&gt;"))

	out := Text("&amp;lt;img src=x onerror=alert(1)&amp;gt;")
	assert.NotContains(t, out, "<")
	assert.NotContains(t, out, ">")
}

func TestText_EscapesAmpersand(t *testing.T) {
	assert.Equal(t, "Tom &amp; Jerry", Text("Tom & Jerry"))
	// idempotente: limpiar lo ya limpio no cambia nada
	assert.Equal(t, "Tom &amp; Jerry", Text(Text("Tom & Jerry")))
}

func TestTextPtr_PreservesNil(t *testing.T) {
	assert.Nil(t, TextPtr(nil))

	in := "<i>hi</i>"
	out := TextPtr(&in)
	if assert.NotNil(t, out) {
		assert.Equal(t, "hi", *out)
	}
}
