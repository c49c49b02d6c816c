package tracing

import (
	"context"
	"os"
	"strings"

	"github.com/vfg2006/ledger-integrations-api/pkg/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/vfg2006/ledger-integrations-api"

// Init configura o exportador OTLP HTTP quando OTEL_EXPORTER_OTLP_ENDPOINT está definido.
// Sem endpoint o tracing fica no provider no-op global.
func Init(ctx context.Context, serviceName, environment string) (func(context.Context) error, error) {
	endpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if endpoint == "" {
		log.L.Info("Tracing desabilitado: OTEL_EXPORTER_OTLP_ENDPOINT não definido")
		return func(context.Context) error { return nil }, nil
	}

	exporter, err := otlptracehttp.New(ctx, exporterOptions(endpoint)...)
	if err != nil {
		return nil, err
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
			semconv.DeploymentEnvironment(environment),
		),
	)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)

	log.L.WithField("endpoint", endpoint).Info("Tracing inicializado")
	return tp.Shutdown, nil
}

// exporterOptions aceita tanto uma URL (http://collector:4318) quanto host:porta
func exporterOptions(endpoint string) []otlptracehttp.Option {
	if strings.Contains(endpoint, "://") {
		return []otlptracehttp.Option{otlptracehttp.WithEndpointURL(endpoint)}
	}
	return []otlptracehttp.Option{otlptracehttp.WithEndpoint(endpoint), otlptracehttp.WithInsecure()}
}

// Tracer retorna o tracer da aplicação a partir do provider global
func Tracer() trace.Tracer {
	return otel.Tracer(tracerName)
}
