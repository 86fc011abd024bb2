package routes

import (
	"github.com/danielgtaylor/huma/v2"

	"github.com/janisto/hello-service/internal/http/health"
	"github.com/janisto/hello-service/internal/http/root"
)

// Register wires all HTTP operations into the provided API.
func Register(api huma.API) {
	root.Register(api)
	health.Register(api)
}
