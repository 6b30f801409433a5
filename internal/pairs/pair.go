package pairs

import (
	"fmt"
	"strings"
)

// Pair identifies a trading pair by its amount-side and price-side asset ids.
// Asset ids are opaque strings; the reference asset id comes from Config.
type Pair struct {
	AmountAsset string `json:"amountAsset"`
	PriceAsset  string `json:"priceAsset"`
}

// Contains reports whether asset is one of the two legs.
func (p Pair) Contains(asset string) bool {
	return p.AmountAsset == asset || p.PriceAsset == asset
}

func (p Pair) String() string {
	return p.AmountAsset + "/" + p.PriceAsset
}

// ParsePair parses the "amountAsset/priceAsset" form used in request
// parameters and watchlists.
func ParsePair(s string) (Pair, error) {
	parts := strings.Split(s, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return Pair{}, fmt.Errorf("pairs: malformed pair %q, want amountAsset/priceAsset", s)
	}
	return Pair{AmountAsset: parts[0], PriceAsset: parts[1]}, nil
}
