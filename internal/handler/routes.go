package handler

import (
	"net/http"

	"github.com/zeromicro/go-zero/rest"

	"amur-data-api/internal/svc"
)

func RegisterHandlers(server *rest.Server, serverCtx *svc.ServiceContext) {
	server.AddRoutes(
		[]rest.Route{
			{
				Method:  http.MethodGet,
				Path:    "/",
				Handler: RootHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/pairs",
				Handler: PairsHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/pairs/:amountAsset/:priceAsset",
				Handler: PairHandler(serverCtx),
			},
		},
	)
}
