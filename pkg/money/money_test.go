package money

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	f := NewFormatter("XOF", "fr")

	out := f.Format(decimal.NewFromInt(2000))
	assert.NotEmpty(t, out)
	// El detalle exacto del símbolo y el separador depende de los datos CLDR;
	// lo estable es que los dígitos del monto estén presentes.
	assert.True(t, strings.Contains(out, "2"), "monto ausente en %q", out)
	assert.True(t, strings.Contains(out, "000"), "miles ausentes en %q", out)
}

// NewFormatter nunca falla: entradas desconocidas caen a XOF/fr.
func TestNewFormatter_Fallback(t *testing.T) {
	f := NewFormatter("???", "not-a-locale")

	out := f.Format(decimal.NewFromInt(150))
	assert.NotEmpty(t, out)
	assert.True(t, strings.Contains(out, "150"), "monto ausente en %q", out)
}
