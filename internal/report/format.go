// Package report renders analysis results as calculation sheets (plain
// text and PDF) and result workbooks. It only formats values already held
// in beam.Input and beam.Results.
package report

import (
	"math"
	"strconv"
	"strings"
)

// NA is printed in place of non-finite values.
const NA = "N/A"

// Decimal places per field.
const (
	DecBeta1   = 3
	DecLength  = 3 // a, c, b, h, d
	DecStrain  = 5
	DecRatio   = 5
	DecPhi     = 3
	DecArea    = 2
	DecStress  = 0
	DecLbIn    = 0
	DecKipFt   = 2
	DecPercent = 3
)

// Num formats v with a fixed number of decimals, or NA when v is NaN or
// infinite.
func Num(v float64, decimals int) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return NA
	}
	return strconv.FormatFloat(v, 'f', decimals, 64)
}

// Percent formats a ratio as a percentage, e.g. 0.01163 → "1.163%".
func Percent(ratio float64) string {
	s := Num(ratio*100, DecPercent)
	if s == NA {
		return s
	}
	return s + "%"
}

var greekToASCII = strings.NewReplacer(
	"ρ", "rho",
	"ε", "e",
	"φ", "phi",
	"β", "B",
	"≥", ">=",
	"≤", "<=",
	"²", "^2",
	"√", "sqrt",
	"′", "'",
	"·", "*",
	"×", "x",
	"−", "-",
	"•", "-",
)

// ASCII replaces Greek symbols and other non-Latin-1 glyphs with plain
// text, for fonts that cannot render them.
func ASCII(s string) string {
	return greekToASCII.Replace(s)
}
