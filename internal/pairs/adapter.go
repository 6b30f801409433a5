package pairs

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/zeromicro/go-zero/core/mr"
	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

// rowQuerier is the slice of sqlx.SqlConn the adapter needs.
type rowQuerier interface {
	QueryRowCtx(ctx context.Context, v any, query string, args ...any) error
}

// Adapter resolves pair statistics against the relational store: it selects
// the query shape for a pair, executes it and normalises the result.
type Adapter struct {
	conn      rowQuerier
	shapes    QueryShapes
	reference string
}

// Result is one slot of a batch lookup. Err carries a store failure for this
// slot only; Info is nil when the pair is unknown or had no activity.
type Result struct {
	Pair Pair
	Info *PairInfo
	Err  error
}

func NewAdapter(conn sqlx.SqlConn, cfg *Config) *Adapter {
	return &Adapter{
		conn:      conn,
		shapes:    NewQueryShapes(cfg),
		reference: cfg.ReferenceAsset,
	}
}

// rawPairRow matches the eight-column projection shared by both query shapes.
type rawPairRow struct {
	ADecimals          int32               `db:"a_decimals"`
	PDecimals          int32               `db:"p_decimals"`
	FirstPrice         decimal.Decimal     `db:"first_price"`
	LastPrice          decimal.Decimal     `db:"last_price"`
	Volume             decimal.Decimal     `db:"volume"`
	VolumePriceAsset   decimal.Decimal     `db:"volume_price_asset"`
	AvgPriceWithAmur   decimal.NullDecimal `db:"avg_price_with_amur"`
	PriceAssetWithAmur sql.NullString      `db:"price_asset_with_amur"`
}

func (r *rawPairRow) toRawPair() *RawPair {
	return &RawPair{
		AmountDecimals:          r.ADecimals,
		PriceDecimals:           r.PDecimals,
		FirstPrice:              r.FirstPrice,
		LastPrice:               r.LastPrice,
		Volume:                  r.Volume,
		VolumePriceAsset:        r.VolumePriceAsset,
		AvgPriceWithReference:   r.AvgPriceWithAmur,
		PriceAssetWithReference: r.PriceAssetWithAmur.String,
	}
}

// Get resolves a single pair. An unknown pair, or one without trading
// activity, yields (nil, nil); only transport or storage failures error.
func (a *Adapter) Get(ctx context.Context, pair Pair) (*PairInfo, error) {
	q := SelectQuery(a.shapes, a.reference, pair)

	var row rawPairRow
	err := a.conn.QueryRowCtx(ctx, &row, q.SQL, q.Args(pair)...)
	switch {
	case errors.Is(err, sqlx.ErrNotFound):
		return nil, nil
	case err != nil:
		return nil, fmt.Errorf("pairs: query %s: %w", pair, err)
	}

	return Transform(a.reference, pair, row.toRawPair()), nil
}

// MGet resolves pairs concurrently. The returned slice is index-aligned with
// the input; slots are element-wise independent, so one pair's failure or
// absence never affects its siblings.
func (a *Adapter) MGet(ctx context.Context, pairs []Pair) []Result {
	results := make([]Result, len(pairs))
	if len(pairs) == 0 {
		return results
	}

	mr.ForEach(func(source chan<- int) {
		for i := range pairs {
			source <- i
		}
	}, func(i int) {
		info, err := a.Get(ctx, pairs[i])
		results[i] = Result{Pair: pairs[i], Info: info, Err: err}
	})

	return results
}
