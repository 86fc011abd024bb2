package health

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/janisto/hello-service/internal/platform/timeutil"
)

// Data is the payload for the health endpoint.
type Data struct {
	Status    string        `json:"status" doc:"Service health" example:"healthy"`
	Timestamp timeutil.Time `json:"timestamp" doc:"Server time (RFC 3339, UTC)" example:"2024-01-15T10:30:00.000Z"`
}

// Output wraps Data as the response body.
type Output struct {
	Body Data
}

// Register wires GET /health into the API.
func Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-health",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Liveness check",
		Tags:        []string{"Health"},
	}, handler)
}

func handler(_ context.Context, _ *struct{}) (*Output, error) {
	return &Output{Body: Data{Status: "healthy", Timestamp: timeutil.Now()}}, nil
}
