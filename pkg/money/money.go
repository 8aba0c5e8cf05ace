// Package money formatea montos para mostrarlos al usuario en la moneda de la
// tienda (por defecto franco CFA, convención fr-FR).
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter produce cadenas de moneda localizadas a partir de montos decimal.
type Formatter struct {
	unit    currency.Unit
	printer *message.Printer
}

// NewFormatter construye un formateador para el código ISO 4217 y la etiqueta
// de idioma BCP 47 dados. Códigos o etiquetas desconocidos caen a XOF / fr.
func NewFormatter(code, locale string) *Formatter {
	unit, err := currency.ParseISO(code)
	if err != nil {
		unit = currency.MustParseISO("XOF")
	}
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.French
	}
	return &Formatter{
		unit:    unit,
		printer: message.NewPrinter(tag),
	}
}

// Format devuelve el monto con separadores de miles y símbolo de moneda,
// ej. "2 000 CFA" con XOF/fr.
func (f *Formatter) Format(amount decimal.Decimal) string {
	return f.printer.Sprintf("%v", currency.Symbol(f.unit.Amount(amount.InexactFloat64())))
}
