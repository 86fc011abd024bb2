// Package root serves the greeting page at "/".
package root

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	applog "github.com/janisto/hello-service/internal/platform/logging"
)

const (
	// Greeting is the complete response body of GET /.
	Greeting = "Hello, World!"
	// ContentType is the media type of GET /.
	ContentType = "text/html; charset=utf-8"
)

var greetingBody = []byte(Greeting)

// Output is a raw HTML body. huma writes []byte bodies verbatim and takes the
// Content-Type from the header field, bypassing JSON/CBOR negotiation.
type Output struct {
	ContentType string `header:"Content-Type"`
	Body        []byte
}

// Register wires GET / into the API.
func Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-root",
		Method:      http.MethodGet,
		Path:        "/",
		Summary:     "Greeting page",
		Description: "Returns a static HTML greeting.",
		Tags:        []string{"Root"},
		Responses: map[string]*huma.Response{
			"200": {
				Description: "Greeting page",
				Content: map[string]*huma.MediaType{
					"text/html": {Schema: &huma.Schema{Type: huma.TypeString, Examples: []any{Greeting}}},
				},
			},
		},
	}, getHandler)
}

func getHandler(ctx context.Context, _ *struct{}) (*Output, error) {
	applog.LogInfo(ctx, "root get", zap.String("path", "/"))
	return &Output{ContentType: ContentType, Body: greetingBody}, nil
}
