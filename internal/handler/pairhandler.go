package handler

import (
	"net/http"

	"github.com/zeromicro/go-zero/rest/httpx"

	"amur-data-api/internal/logic"
	"amur-data-api/internal/svc"
	"amur-data-api/internal/types"
)

func PairHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.PairRequest
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := logic.NewPairLogic(r.Context(), svcCtx)
		resp, err := l.Pair(&req)
		if err != nil {
			writeError(w, r, err)
			return
		}
		httpx.OkJsonCtx(r.Context(), w, resp)
	}
}
