// Package router wires every API operation to its path, decoder, and error
// mapping.
package router

import (
	"github.com/go-playground/validator/v10"
	"github.com/pavelpascari/typedhttp/pkg/typedhttp"

	"github.com/libertybench/sampleapp/internal/config"
	"github.com/libertybench/sampleapp/internal/counter"
	"github.com/libertybench/sampleapp/internal/handlers"
	"github.com/libertybench/sampleapp/internal/models"
)

// Setup configures and returns a router with all routes registered. The
// counter instance is shared by every handler.
func Setup(cfg *config.Config, ctr *counter.RequestCounter) *typedhttp.TypedRouter {
	r := typedhttp.NewRouter()
	v := handlers.NewValidator()
	mapper := handlers.NewErrorMapper()

	registerHelloRoutes(r, ctr, v, mapper)
	registerLoadRoutes(r, ctr, v, mapper)
	registerStatsRoutes(r, ctr, v, mapper)
	registerSystemRoutes(r, cfg, ctr, mapper)

	return r
}

// registerHelloRoutes registers the greeting and echo endpoints.
func registerHelloRoutes(r *typedhttp.TypedRouter, ctr *counter.RequestCounter, v *validator.Validate, mapper typedhttp.ErrorMapper) {
	typedhttp.GET(r, "/api/hello", handlers.NewGreetHandler(ctr),
		typedhttp.WithTags("hello"),
		typedhttp.WithSummary("Static greeting"),
		typedhttp.WithDescription("Returns a fixed greeting and increments the request counter"),
		typedhttp.WithErrorMapper(mapper),
	)

	typedhttp.GET(r, "/api/hello/{name}", handlers.NewGreetNameHandler(ctr),
		typedhttp.WithTags("hello"),
		typedhttp.WithSummary("Personalized greeting"),
		typedhttp.WithDescription("Greets the caller by name; names are 1-100 characters and must not be blank"),
		typedhttp.WithDecoder[models.GreetNameRequest](typedhttp.NewPathDecoder[models.GreetNameRequest](v)),
		typedhttp.WithErrorMapper(mapper),
	)

	typedhttp.POST(r, "/api/echo", handlers.NewEchoHandler(ctr),
		typedhttp.WithTags("hello"),
		typedhttp.WithSummary("Echo a message"),
		typedhttp.WithDescription("Echoes the message back with its character count"),
		typedhttp.WithDecoder[models.EchoRequest](handlers.NewEchoDecoder(v)),
		typedhttp.WithEncoder[models.EchoResponse](newOKEncoder[models.EchoResponse]()),
		typedhttp.WithErrorMapper(mapper),
	)
}

// registerLoadRoutes registers the simulated-load endpoints. Both use an
// explicit query decoder so malformed numeric parameters surface as client
// errors instead of being dropped.
func registerLoadRoutes(r *typedhttp.TypedRouter, ctr *counter.RequestCounter, v *validator.Validate, mapper typedhttp.ErrorMapper) {
	typedhttp.GET(r, "/api/slow", handlers.NewSlowHandler(ctr),
		typedhttp.WithTags("load"),
		typedhttp.WithSummary("Simulated latency"),
		typedhttp.WithDescription("Waits for the requested number of milliseconds (0-10000, default 1000) before responding"),
		typedhttp.WithDecoder[models.SlowRequest](typedhttp.NewQueryDecoder[models.SlowRequest](v)),
		typedhttp.WithErrorMapper(mapper),
	)

	typedhttp.GET(r, "/api/compute", handlers.NewComputeHandler(ctr),
		typedhttp.WithTags("load"),
		typedhttp.WithSummary("Simulated computation"),
		typedhttp.WithDescription("Runs a deterministic floating-point accumulation for the requested iteration count"),
		typedhttp.WithDecoder[models.ComputeRequest](typedhttp.NewQueryDecoder[models.ComputeRequest](v)),
		typedhttp.WithErrorMapper(mapper),
	)
}

// registerStatsRoutes registers the statistics endpoints.
func registerStatsRoutes(r *typedhttp.TypedRouter, ctr *counter.RequestCounter, v *validator.Validate, mapper typedhttp.ErrorMapper) {
	typedhttp.GET(r, "/api/stats", handlers.NewStatsHandler(ctr),
		typedhttp.WithTags("stats"),
		typedhttp.WithSummary("Request statistics"),
		typedhttp.WithDescription("Reports the total request count and application uptime"),
		typedhttp.WithErrorMapper(mapper),
	)

	typedhttp.POST(r, "/api/stats/reset", handlers.NewResetStatsHandler(ctr),
		typedhttp.WithTags("stats"),
		typedhttp.WithSummary("Reset request statistics"),
		typedhttp.WithDescription("Atomically resets the request counter and reports the previous value"),
		typedhttp.WithDecoder[models.ResetStatsRequest](typedhttp.NewHeaderDecoder[models.ResetStatsRequest](v)),
		typedhttp.WithEncoder[models.ResetStatsResponse](newOKEncoder[models.ResetStatsResponse]()),
		typedhttp.WithErrorMapper(mapper),
	)
}

// registerSystemRoutes registers the debug and liveness endpoints.
func registerSystemRoutes(r *typedhttp.TypedRouter, cfg *config.Config, ctr *counter.RequestCounter, mapper typedhttp.ErrorMapper) {
	typedhttp.GET(r, "/api/info", handlers.NewInfoHandler(ctr, cfg.Debug),
		typedhttp.WithTags("system"),
		typedhttp.WithSummary("Runtime information"),
		typedhttp.WithDescription("Host and runtime details; only available when debug endpoints are enabled"),
		typedhttp.WithErrorMapper(mapper),
	)

	typedhttp.GET(r, "/health", handlers.NewHealthHandler(ctr),
		typedhttp.WithTags("system"),
		typedhttp.WithSummary("Liveness probe"),
		typedhttp.WithErrorMapper(mapper),
	)
}
