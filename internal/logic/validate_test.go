package logic

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"amur-data-api/internal/pairs"
)

const (
	refAsset = "AMUR"
	btcAsset = "8LQW8f7P5d5PZM7GtZEBgaqRPGSzS3DfPuiXrURJ4AJS"
	ethAsset = "474jTeYx2r2Va35794tCScAXWJG9hU2HcgxzMowaZUnu"
)

func TestValidateAssetID(t *testing.T) {
	for _, id := range []string{refAsset, btcAsset, ethAsset, "1"} {
		assert.NoError(t, validateAssetID(id), "id %q", id)
	}

	invalid := []string{
		"",
		"with space",
		"0cantStartWithZero",
		"OhNoAmbiguous",
		"Illegal",
		"lowercase-l" + strings.Repeat("x", 5),
		strings.Repeat("a", 45),
	}
	for _, id := range invalid {
		assert.Error(t, validateAssetID(id), "id %q", id)
	}
}

func TestParsePairParams(t *testing.T) {
	ps, err := parsePairParams([]string{
		refAsset + "/" + btcAsset,
		ethAsset + "/" + refAsset,
	}, 10)
	require.NoError(t, err)
	require.Len(t, ps, 2)
	assert.Equal(t, pairs.Pair{AmountAsset: refAsset, PriceAsset: btcAsset}, ps[0])
	assert.Equal(t, pairs.Pair{AmountAsset: ethAsset, PriceAsset: refAsset}, ps[1])
}

func TestParsePairParamsRejects(t *testing.T) {
	var ve *ValidationError

	cases := []struct {
		name   string
		params []string
		limit  int
	}{
		{"empty batch", nil, 10},
		{"over the limit", []string{refAsset + "/" + btcAsset, ethAsset + "/" + btcAsset}, 1},
		{"missing separator", []string{refAsset + btcAsset}, 10},
		{"bad asset id", []string{refAsset + "/not valid"}, 10},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parsePairParams(tc.params, tc.limit)
			require.Error(t, err)
			assert.ErrorAs(t, err, &ve)
		})
	}
}
