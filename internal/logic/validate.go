package logic

import (
	"fmt"
	"regexp"

	"amur-data-api/internal/pairs"
)

// Asset ids are base58-encoded hashes up to 44 characters; the reference
// asset literal fits the same alphabet.
var assetIDRe = regexp.MustCompile(`^[1-9A-HJ-NP-Za-km-z]{1,44}$`)

// ValidationError marks a rejected request input. Handlers translate it into
// a 400 with a structured payload.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func validationErrorf(format string, args ...any) error {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

func validateAssetID(id string) error {
	if !assetIDRe.MatchString(id) {
		return validationErrorf("invalid asset id %q", id)
	}
	return nil
}

func validatePair(p pairs.Pair) error {
	if err := validateAssetID(p.AmountAsset); err != nil {
		return err
	}
	return validateAssetID(p.PriceAsset)
}

// parsePairParams parses and validates the batch form entries.
func parsePairParams(params []string, maxBatch int) ([]pairs.Pair, error) {
	if len(params) == 0 {
		return nil, validationErrorf("at least one pair is required")
	}
	if len(params) > maxBatch {
		return nil, validationErrorf("too many pairs: %d, limit is %d", len(params), maxBatch)
	}

	ps := make([]pairs.Pair, 0, len(params))
	for _, param := range params {
		p, err := pairs.ParsePair(param)
		if err != nil {
			return nil, validationErrorf("invalid pair %q", param)
		}
		if err := validatePair(p); err != nil {
			return nil, err
		}
		ps = append(ps, p)
	}
	return ps, nil
}
