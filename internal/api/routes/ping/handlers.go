// Package ping contains handlers for pinging the server
package ping

import (
	"net/http"

	"github.com/matt-dz/foodgram/internal/env"
	mJson "github.com/matt-dz/foodgram/internal/json"
)

type PingResponse struct {
	Status string `json:"status"`
} //	@name	PingResponse

// HandlePing godoc
//
//	@Summary	Ping endpoint.
//	@Tags		Ping
//	@Produce	json
//
//	@Success	200	{object}	PingResponse
//	@Router		/api/ping [GET]
func HandlePing(w http.ResponseWriter, r *http.Request) {
	if err := mJson.WriteJSON(w, http.StatusOK, PingResponse{Status: "ok"}); err != nil {
		env.EnvFromCtx(r.Context()).Logger.ErrorContext(r.Context(), "Failed to write response")
	}
}
