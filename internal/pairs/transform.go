package pairs

import "github.com/shopspring/decimal"

// RawPair is the unprocessed result of a pair query: integer-encoded values
// plus both assets' decimal counts. The triangulation fields are only
// populated by the triangulated query shape and stay null otherwise.
type RawPair struct {
	AmountDecimals   int32
	PriceDecimals    int32
	FirstPrice       decimal.Decimal
	LastPrice        decimal.Decimal
	Volume           decimal.Decimal
	VolumePriceAsset decimal.Decimal

	// AvgPriceWithReference is the average price of the auxiliary pair
	// linking the main pair's price asset to the reference asset.
	AvgPriceWithReference decimal.NullDecimal
	// PriceAssetWithReference is the price-side asset id of that auxiliary
	// pair, used to orient the triangulation.
	PriceAssetWithReference string
}

// PairInfo is the normalised pair statistics handed to the resolver.
// VolumeAmur is null when the pair has no known relation to the reference
// asset; that is distinct from the whole record being absent (nil *PairInfo).
type PairInfo struct {
	FirstPrice decimal.Decimal     `json:"firstPrice"`
	LastPrice  decimal.Decimal     `json:"lastPrice"`
	Volume     decimal.Decimal     `json:"volume"`
	VolumeAmur decimal.NullDecimal `json:"volumeAmur"`
}

// Transform normalises a raw query result for the given pair.
//
// A nil raw record (no trading activity) maps to nil, never to zeros. The
// reference-denominated volume is derived from one of four shapes:
//
//  1. reference is the amount asset: volumeAmur = volume
//  2. reference is the price asset: volumeAmur = volume_price_asset at the
//     reference asset's own decimal count
//  3. reference absent, auxiliary pair priceAsset/reference known:
//     volumeAmur = converted volume_price_asset * converted avg price
//  4. reference absent, auxiliary pair reference/priceAsset known:
//     volumeAmur = converted volume_price_asset / converted avg price
//
// When the reference asset is absent and no auxiliary average price exists,
// volumeAmur is null while every other field stays populated.
//
// Each shape pairs different decimal counts into ConvertPrice; swapping any
// pairing produces a plausible but wrong number, hence the per-case tests.
func Transform(referenceAsset string, pair Pair, raw *RawPair) *PairInfo {
	if raw == nil {
		return nil
	}

	info := &PairInfo{
		FirstPrice: ConvertPrice(raw.AmountDecimals, raw.PriceDecimals, raw.FirstPrice),
		LastPrice:  ConvertPrice(raw.AmountDecimals, raw.PriceDecimals, raw.LastPrice),
		Volume:     ConvertAmount(raw.AmountDecimals, raw.Volume),
	}

	switch {
	case pair.AmountAsset == referenceAsset:
		// The traded amount already is in the reference asset.
		info.VolumeAmur = decimal.NewNullDecimal(info.Volume)
	case pair.PriceAsset == referenceAsset:
		// Price-side volume is reference-denominated but encoded at the
		// reference asset's decimal count, not the pair's.
		info.VolumeAmur = decimal.NewNullDecimal(
			ConvertAmount(ReferenceDecimals, raw.VolumePriceAsset))
	default:
		if !raw.AvgPriceWithReference.Valid {
			// Pair trades, but no priceAsset<->reference relation is known.
			return info
		}

		volume := ConvertAmount(raw.PriceDecimals, raw.VolumePriceAsset)
		avg := raw.AvgPriceWithReference.Decimal

		if raw.PriceAssetWithReference == referenceAsset {
			// Auxiliary pair is priceAsset/reference: the average price is
			// reference per unit of price asset, so multiply.
			price := ConvertPrice(raw.PriceDecimals, ReferenceDecimals, avg)
			info.VolumeAmur = decimal.NewNullDecimal(volume.Mul(price))
		} else {
			// Auxiliary pair is reference/priceAsset: the average price is
			// price asset per unit of reference, so divide.
			price := ConvertPrice(ReferenceDecimals, raw.PriceDecimals, avg)
			info.VolumeAmur = decimal.NewNullDecimal(volume.Div(price))
		}
	}

	return info
}
