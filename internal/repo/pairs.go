package repo

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/mr"

	cachekeys "amur-data-api/internal/cache"
	"amur-data-api/internal/pairs"
)

// PairsStore resolves pairs against the relational store.
type PairsStore interface {
	Get(ctx context.Context, pair pairs.Pair) (*pairs.PairInfo, error)
	MGet(ctx context.Context, ps []pairs.Pair) []pairs.Result
}

// cacheClient is the slice of the go-zero redis client the repo uses: plain
// string get/set, since values go through the pairs codec.
type cacheClient interface {
	GetCtx(ctx context.Context, key string) (string, error)
	SetexCtx(ctx context.Context, key, value string, seconds int) error
}

// PairsRepo serves pair statistics cache-first: a Redis hit decodes without
// touching Postgres, a miss queries the store and back-fills the cache.
// Cache failures degrade to the store path; store failures propagate.
type PairsRepo struct {
	store PairsStore
	rds   cacheClient
	ttl   cachekeys.TTLSet
}

func NewPairsRepo(store PairsStore, rds cacheClient, ttl cachekeys.TTLSet) *PairsRepo {
	return &PairsRepo{store: store, rds: rds, ttl: ttl}
}

// Get resolves one pair. Absent pairs come back as (nil, nil) and are never
// cached, so a pair appearing later is picked up immediately.
func (r *PairsRepo) Get(ctx context.Context, pair pairs.Pair) (*pairs.PairInfo, error) {
	key := cachekeys.PairKey(pair.AmountAsset, pair.PriceAsset)

	if info, ok := r.fromCache(ctx, key); ok {
		return info, nil
	}

	info, err := r.store.Get(ctx, pair)
	if err != nil {
		return nil, err
	}
	if info != nil {
		r.fillCache(ctx, key, info)
	}
	return info, nil
}

// MGet resolves pairs concurrently through Get, so every slot keeps the
// cache-first behaviour and failures stay isolated per slot. The result is
// index-aligned with the input.
func (r *PairsRepo) MGet(ctx context.Context, ps []pairs.Pair) []pairs.Result {
	results := make([]pairs.Result, len(ps))
	if len(ps) == 0 {
		return results
	}

	mr.ForEach(func(source chan<- int) {
		for i := range ps {
			source <- i
		}
	}, func(i int) {
		info, err := r.Get(ctx, ps[i])
		results[i] = pairs.Result{Pair: ps[i], Info: info, Err: err}
	})

	return results
}

func (r *PairsRepo) fromCache(ctx context.Context, key string) (*pairs.PairInfo, bool) {
	if r.rds == nil {
		return nil, false
	}
	s, err := r.rds.GetCtx(ctx, key)
	if err != nil {
		logx.WithContext(ctx).Errorf("pairs repo: cache get %s: %v", key, err)
		return nil, false
	}
	if s == "" {
		return nil, false
	}
	info, err := pairs.Decode(s)
	if err != nil {
		// A payload we cannot decode is as good as a miss.
		logx.WithContext(ctx).Errorf("pairs repo: decode cached %s: %v", key, err)
		return nil, false
	}
	return info, true
}

func (r *PairsRepo) fillCache(ctx context.Context, key string, info *pairs.PairInfo) {
	if r.rds == nil {
		return
	}
	ttl := cachekeys.PairTTL(r.ttl)
	if ttl <= 0 {
		return
	}
	s, err := pairs.Encode(info)
	if err != nil {
		logx.WithContext(ctx).Errorf("pairs repo: encode %s: %v", key, err)
		return
	}
	if err := r.rds.SetexCtx(ctx, key, s, int(ttl.Seconds())); err != nil {
		logx.WithContext(ctx).Errorf("pairs repo: cache set %s: %v", key, err)
	}
}
