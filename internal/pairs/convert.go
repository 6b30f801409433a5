package pairs

import "github.com/shopspring/decimal"

const (
	// PriceDecimals is the fixed exponent the matcher encodes every raw
	// price with, regardless of the assets involved. Every derived
	// computation in this package depends on this value being exact;
	// changing it breaks numeric compatibility with stored and cached data.
	PriceDecimals int32 = 8

	// ReferenceDecimals is the decimal count of the reference (AMUR) asset
	// ledger amounts.
	ReferenceDecimals int32 = 8
)

// ConvertAmount turns an integer-encoded ledger amount into its true decimal
// value: raw * 10^(-decimals).
func ConvertAmount(decimals int32, raw decimal.Decimal) decimal.Decimal {
	return raw.Shift(-decimals)
}

// ConvertPrice turns an integer-encoded price into its true decimal value.
// A raw price is priceAmount/amountAmount scaled by both assets' decimal
// counts and the fixed PriceDecimals exponent:
//
//	raw * 10^(amountDecimals - priceDecimals - PriceDecimals)
func ConvertPrice(amountDecimals, priceDecimals int32, raw decimal.Decimal) decimal.Decimal {
	return raw.Shift(amountDecimals - priceDecimals - PriceDecimals)
}
