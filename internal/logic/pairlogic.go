package logic

import (
	"context"
	"errors"

	"github.com/zeromicro/go-zero/core/logx"

	"amur-data-api/internal/pairs"
	"amur-data-api/internal/svc"
	"amur-data-api/internal/types"
)

// ErrPairNotFound is returned when the requested pair had no trading
// activity or its assets are unknown. Handlers translate it into a 404.
var ErrPairNotFound = errors.New("pair not found")

type PairLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewPairLogic(ctx context.Context, svcCtx *svc.ServiceContext) *PairLogic {
	return &PairLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *PairLogic) Pair(req *types.PairRequest) (*types.PairEntry, error) {
	pair := pairs.Pair{AmountAsset: req.AmountAsset, PriceAsset: req.PriceAsset}
	if err := validatePair(pair); err != nil {
		return nil, err
	}

	info, err := l.svcCtx.Pairs.Get(l.ctx, pair)
	if err != nil {
		l.Errorf("resolve pair %s: %v", pair, err)
		return nil, err
	}
	if info == nil {
		return nil, ErrPairNotFound
	}

	entry := pairEntry(info)
	return &entry, nil
}
