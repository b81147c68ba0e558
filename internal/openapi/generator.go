// Package openapi wraps the framework's OpenAPI generator with this
// service's configuration.
package openapi

import (
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/pavelpascari/typedhttp/pkg/openapi"
	"github.com/pavelpascari/typedhttp/pkg/typedhttp"

	"github.com/libertybench/sampleapp/internal/config"
)

// Generator produces the OpenAPI description of the registered routes.
type Generator struct {
	generator *openapi.Generator
}

// NewGenerator creates a generator carrying the service metadata.
func NewGenerator(cfg *config.Config) *Generator {
	return &Generator{
		generator: openapi.NewGenerator(cfg.ToOpenAPIConfig()),
	}
}

// Generate builds the OpenAPI document for the given router.
func (g *Generator) Generate(router *typedhttp.TypedRouter) (*openapi3.T, error) {
	return g.generator.Generate(router)
}

// GenerateJSON renders the document as JSON.
func (g *Generator) GenerateJSON(spec *openapi3.T) ([]byte, error) {
	return g.generator.GenerateJSON(spec)
}

// GenerateYAML renders the document as YAML.
func (g *Generator) GenerateYAML(spec *openapi3.T) ([]byte, error) {
	return g.generator.GenerateYAML(spec)
}
