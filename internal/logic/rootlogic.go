package logic

import (
	"context"
	"os"

	"github.com/zeromicro/go-zero/core/logx"

	"amur-data-api/internal/svc"
	"amur-data-api/internal/types"
)

// Version identifies the service build.
const Version = "0.9.0"

const githubURL = "https://github.com/amur-host/data-service"

type RootLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewRootLogic(ctx context.Context, svcCtx *svc.ServiceContext) *RootLogic {
	return &RootLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *RootLogic) Root() (*types.VersionResponse, error) {
	resp := &types.VersionResponse{
		Version: Version,
		Github:  githubURL,
	}
	if docs := os.Getenv("DOCS_URL"); docs != "" {
		resp.DocsURL = docs
	}
	return resp, nil
}
