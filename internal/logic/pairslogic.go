package logic

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	"amur-data-api/internal/svc"
	"amur-data-api/internal/types"
)

type PairsLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewPairsLogic(ctx context.Context, svcCtx *svc.ServiceContext) *PairsLogic {
	return &PairsLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// Pairs resolves a batch. Slots are element-wise independent: an unknown
// pair yields a null entry and a failed slot an error entry, neither affects
// its siblings. The response order matches the request order.
func (l *PairsLogic) Pairs(req *types.PairsRequest) (*types.ListResponse, error) {
	ps, err := parsePairParams(req.Pairs, l.svcCtx.PairsConfig.MaxBatch)
	if err != nil {
		return nil, err
	}

	results := l.svcCtx.Pairs.MGet(l.ctx, ps)

	entries := make([]types.PairEntry, len(results))
	for i, res := range results {
		if res.Err != nil {
			l.Errorf("resolve pair %s: %v", res.Pair, res.Err)
			entries[i] = errorEntry("failed to resolve pair " + res.Pair.String())
			continue
		}
		entries[i] = pairEntry(res.Info)
	}

	return &types.ListResponse{Type: typeList, Data: entries}, nil
}
