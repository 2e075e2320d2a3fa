package domain

import "github.com/shopspring/decimal"

// minorUnitDigits lists ISO 4217 currencies whose minor unit is not two
// decimal places. Codes absent from the map default to 2.
var minorUnitDigits = map[string]int32{
	"BIF": 0, "CLP": 0, "DJF": 0, "GNF": 0, "ISK": 0, "JPY": 0, "KMF": 0,
	"KRW": 0, "PYG": 0, "RWF": 0, "UGX": 0, "VND": 0, "VUV": 0, "XAF": 0,
	"XOF": 0, "XPF": 0,
	"BHD": 3, "IQD": 3, "JOD": 3, "KWD": 3, "LYD": 3, "OMR": 3, "TND": 3,
}

// MinorUnitDigits returns how many decimal places the currency's minor unit
// represents.
func MinorUnitDigits(code string) int32 {
	if digits, ok := minorUnitDigits[code]; ok {
		return digits
	}
	return 2
}

// MinorToDecimal converts a minor-unit amount into the currency's major unit.
func MinorToDecimal(amountMinor int64, code string) decimal.Decimal {
	return decimal.New(amountMinor, -MinorUnitDigits(code))
}
