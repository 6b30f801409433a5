package logic

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cachekeys "amur-data-api/internal/cache"
	"amur-data-api/internal/config"
	"amur-data-api/internal/pairs"
	"amur-data-api/internal/repo"
	"amur-data-api/internal/svc"
	"amur-data-api/internal/types"
)

var errStore = errors.New("connection reset")

// stubStore serves a fixed view of the relational store keyed by amount
// asset: the reference pair resolves, "qwe" is unknown, anything else fails.
type stubStore struct{}

func (stubStore) Get(_ context.Context, p pairs.Pair) (*pairs.PairInfo, error) {
	switch p.AmountAsset {
	case refAsset:
		return &pairs.PairInfo{
			FirstPrice: decimal.New(1, 6),
			LastPrice:  decimal.New(2, 6),
			Volume:     decimal.New(1, 2),
			VolumeAmur: decimal.NewNullDecimal(decimal.New(1, 2)),
		}, nil
	case "qwe":
		return nil, nil
	default:
		return nil, errStore
	}
}

func (s stubStore) MGet(ctx context.Context, ps []pairs.Pair) []pairs.Result {
	results := make([]pairs.Result, len(ps))
	for i, p := range ps {
		info, err := s.Get(ctx, p)
		results[i] = pairs.Result{Pair: p, Info: info, Err: err}
	}
	return results
}

func newTestServiceContext() *svc.ServiceContext {
	ttl := cachekeys.NewTTLSet(config.CacheTTL{Short: 10, Medium: 60, Long: 300})
	return &svc.ServiceContext{
		PairsConfig: pairs.DefaultConfig(),
		Pairs:       repo.NewPairsRepo(stubStore{}, nil, ttl),
	}
}

func TestPairLogic(t *testing.T) {
	l := NewPairLogic(context.Background(), newTestServiceContext())

	entry, err := l.Pair(&types.PairRequest{AmountAsset: refAsset, PriceAsset: btcAsset})
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, "pair", entry.Type)
	require.NotNil(t, entry.Data)
	assert.Equal(t, "1000000", entry.Data.FirstPrice)
	assert.Equal(t, "2000000", entry.Data.LastPrice)
	assert.Equal(t, "100", entry.Data.Volume)
	require.NotNil(t, entry.Data.VolumeAmur)
	assert.Equal(t, "100", *entry.Data.VolumeAmur)
}

func TestPairLogic_NotFound(t *testing.T) {
	l := NewPairLogic(context.Background(), newTestServiceContext())

	_, err := l.Pair(&types.PairRequest{AmountAsset: "qwe", PriceAsset: "asd"})
	assert.ErrorIs(t, err, ErrPairNotFound)
}

func TestPairLogic_InvalidInput(t *testing.T) {
	l := NewPairLogic(context.Background(), newTestServiceContext())

	var ve *ValidationError
	_, err := l.Pair(&types.PairRequest{AmountAsset: "not valid", PriceAsset: btcAsset})
	require.Error(t, err)
	assert.ErrorAs(t, err, &ve)
}

func TestPairsLogic_BatchSlotsAreIndependent(t *testing.T) {
	l := NewPairsLogic(context.Background(), newTestServiceContext())

	resp, err := l.Pairs(&types.PairsRequest{Pairs: []string{
		refAsset + "/" + btcAsset,
		"qwe/asd",
		ethAsset + "/" + btcAsset,
	}})
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Equal(t, "list", resp.Type)
	require.Len(t, resp.Data, 3)

	// Resolved pair.
	assert.Equal(t, "pair", resp.Data[0].Type)
	require.NotNil(t, resp.Data[0].Data)

	// Unknown pair: a pair envelope with null data, not an error.
	assert.Equal(t, "pair", resp.Data[1].Type)
	assert.Nil(t, resp.Data[1].Data)
	assert.Empty(t, resp.Data[1].Message)

	// Failed slot: an error envelope, siblings untouched.
	assert.Equal(t, "error", resp.Data[2].Type)
	assert.NotEmpty(t, resp.Data[2].Message)
}

func TestPairsLogic_BatchLimit(t *testing.T) {
	svcCtx := newTestServiceContext()
	svcCtx.PairsConfig.MaxBatch = 1
	l := NewPairsLogic(context.Background(), svcCtx)

	var ve *ValidationError
	_, err := l.Pairs(&types.PairsRequest{Pairs: []string{
		refAsset + "/" + btcAsset,
		ethAsset + "/" + btcAsset,
	}})
	require.Error(t, err)
	assert.ErrorAs(t, err, &ve)
}

func TestToPairDataNullVolume(t *testing.T) {
	data := toPairData(&pairs.PairInfo{
		FirstPrice: decimal.New(1, 6),
		LastPrice:  decimal.New(2, 6),
		Volume:     decimal.New(1, 2),
	})
	assert.Nil(t, data.VolumeAmur)
}
