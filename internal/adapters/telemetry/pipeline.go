package telemetry

import (
	"context"
	"errors"
	"os"

	"github.com/FloatyJellyfish/mod-updater/internal/core/domain"
	"github.com/FloatyJellyfish/mod-updater/internal/core/ports"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/zerr"
)

// Pipeline owns the tracer provider for one command invocation.
type Pipeline struct {
	provider  *sdktrace.TracerProvider
	tracer    *OTelTracer
	traceFile *os.File
}

// PipelineOptions configures NewPipeline.
type PipelineOptions struct {
	// Renderer receives task start and completion events. May be nil.
	Renderer ports.Renderer
	// TraceFile, when set, receives every finished span as pretty-printed JSON.
	TraceFile string
	// Version is recorded as the service version.
	Version string
}

// NewPipeline builds a tracer provider that feeds the renderer bridge and the optional trace file,
// and registers it as the global provider.
func NewPipeline(opts PipelineOptions) (*Pipeline, error) {
	p := &Pipeline{}

	providerOpts := []sdktrace.TracerProviderOption{
		sdktrace.WithResource(resource.NewSchemaless(
			attribute.String("service.name", domain.AppName),
			attribute.String("service.version", opts.Version),
		)),
		sdktrace.WithSpanProcessor(NewBridge(opts.Renderer)),
	}

	if opts.TraceFile != "" {
		//nolint:gosec // Path comes from trusted settings
		f, err := os.OpenFile(opts.TraceFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, domain.FilePerm)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to open trace file"), "path", opts.TraceFile)
		}
		exporter, err := stdouttrace.New(stdouttrace.WithWriter(f), stdouttrace.WithPrettyPrint())
		if err != nil {
			_ = f.Close()
			return nil, zerr.Wrap(err, "failed to create trace exporter")
		}
		p.traceFile = f
		providerOpts = append(providerOpts, sdktrace.WithBatcher(exporter))
	}

	p.provider = sdktrace.NewTracerProvider(providerOpts...)
	otel.SetTracerProvider(p.provider)

	p.tracer = NewOTelTracerWithProvider(p.provider, domain.AppName).WithRenderer(opts.Renderer)
	return p, nil
}

// Tracer returns the tracer bound to this pipeline.
func (p *Pipeline) Tracer() *OTelTracer {
	return p.tracer
}

// Shutdown flushes pending spans and closes the trace file.
func (p *Pipeline) Shutdown(ctx context.Context) error {
	err := p.provider.Shutdown(ctx)
	if p.traceFile != nil {
		err = errors.Join(err, p.traceFile.Close())
	}
	return err
}
