package pairs

import (
	"fmt"

	"github.com/zeromicro/go-zero/core/jsonx"
)

// Encode serialises pair statistics for the cache. Decimal fields marshal as
// quoted decimal strings, so the representation is digit-exact for values
// beyond float64 range, and the encoding is deterministic for a given value.
func Encode(info *PairInfo) (string, error) {
	if info == nil {
		return "", fmt.Errorf("pairs: encode nil pair info")
	}
	s, err := jsonx.MarshalToString(info)
	if err != nil {
		return "", fmt.Errorf("pairs: encode pair info: %w", err)
	}
	return s, nil
}

// Decode reverses Encode. Numeric fields are reconstructed as decimals from
// their string form, never passing through floating point.
func Decode(s string) (*PairInfo, error) {
	var info PairInfo
	if err := jsonx.UnmarshalFromString(s, &info); err != nil {
		return nil, fmt.Errorf("pairs: decode pair info: %w", err)
	}
	return &info, nil
}
