package handler

import (
	"net/http"

	"github.com/zeromicro/go-zero/rest/httpx"

	"amur-data-api/internal/logic"
	"amur-data-api/internal/svc"
)

func RootHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l := logic.NewRootLogic(r.Context(), svcCtx)
		resp, err := l.Root()
		if err != nil {
			writeError(w, r, err)
			return
		}
		httpx.OkJsonCtx(r.Context(), w, resp)
	}
}
