package status

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// StatusResponse is the liveness payload.
type StatusResponse struct {
	Status string `json:"status" doc:"Always ok while the process is serving"`
}

type StatusOutput struct {
	Body StatusResponse
}

// Handler handles GET /status.
type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// Register registers the status endpoint with the Huma API.
func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-status",
		Method:      http.MethodGet,
		Path:        "/status",
		Summary:     "Liveness check",
		Tags:        []string{"Status"},
	}, h.handle)
}

func (h *Handler) handle(ctx context.Context, input *struct{}) (*StatusOutput, error) {
	return &StatusOutput{Body: StatusResponse{Status: "ok"}}, nil
}
