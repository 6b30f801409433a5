package handler

import (
	"errors"
	"net/http"

	"github.com/zeromicro/go-zero/rest/httpx"

	"amur-data-api/internal/logic"
	"amur-data-api/internal/types"
)

// writeError maps logic errors to status codes with the structured error
// envelope: validation failures to 400, unknown pairs to 404, store
// failures to 500 with the detail kept out of the response.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var ve *logic.ValidationError

	switch {
	case errors.As(err, &ve):
		httpx.WriteJsonCtx(r.Context(), w, http.StatusBadRequest, types.ErrorResponse{
			Type:    "error",
			Message: ve.Error(),
		})
	case errors.Is(err, logic.ErrPairNotFound):
		httpx.WriteJsonCtx(r.Context(), w, http.StatusNotFound, types.ErrorResponse{
			Type:    "error",
			Message: "pair not found",
		})
	default:
		httpx.WriteJsonCtx(r.Context(), w, http.StatusInternalServerError, types.ErrorResponse{
			Type:    "error",
			Message: "internal error",
		})
	}
}
