package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/metric"

	appctx "github.com/jsamuelsen11/go-dossier-service/internal/app/context"
	"github.com/jsamuelsen11/go-dossier-service/internal/app/fanout"
	"github.com/jsamuelsen11/go-dossier-service/internal/catalog"
	"github.com/jsamuelsen11/go-dossier-service/internal/domain"
	"github.com/jsamuelsen11/go-dossier-service/internal/domain/layout"
	"github.com/jsamuelsen11/go-dossier-service/internal/domain/record"
	"github.com/jsamuelsen11/go-dossier-service/internal/domain/validate"
	"github.com/jsamuelsen11/go-dossier-service/internal/domain/wizard"
	"github.com/jsamuelsen11/go-dossier-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/go-dossier-service/internal/ports"
)

var _ ports.DocumentService = (*DocumentService)(nil)

// ComposeLimits bounds document work.
type ComposeLimits struct {
	// Timeout caps one composition plus render.
	Timeout time.Duration
	// Workers caps concurrent compositions in a batch.
	Workers int
	// MaxBatch caps the number of requests in one batch.
	MaxBatch int
}

// DocumentService composes records onto their template's canvas and renders
// them. Canvases are cached after the first successful load; fonts are
// optional and cached only when they load.
type DocumentService struct {
	catalog  *catalog.Catalog
	assets   ports.AssetSource
	renderer ports.DocumentRenderer
	limits   ComposeLimits
	metrics  *telemetry.Metrics
	logger   *slog.Logger

	canvases *appctx.Memo[string, layout.Canvas]
	fonts    *appctx.Memo[string, *layout.Font]
}

// NewDocumentService creates a DocumentService. A nil metrics disables
// metric recording and a nil logger discards logs.
func NewDocumentService(
	cat *catalog.Catalog,
	assets ports.AssetSource,
	renderer ports.DocumentRenderer,
	limits ComposeLimits,
	metrics *telemetry.Metrics,
	logger *slog.Logger,
) *DocumentService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &DocumentService{
		catalog:  cat,
		assets:   assets,
		renderer: renderer,
		limits:   limits,
		metrics:  metrics,
		logger:   logger,
		canvases: appctx.NewMemo[string, layout.Canvas](),
		fonts:    appctx.NewMemo[string, *layout.Font](),
	}
}

// Generate composes and renders rec with the layout of templateID.
func (s *DocumentService) Generate(ctx context.Context, templateID string, rec record.Record) (*layout.Document, error) {
	tpl, ok := s.catalog.Template(templateID)
	if !ok {
		return nil, unknownTemplate(templateID)
	}
	desc, ok := s.catalog.Layout(tpl.Layout)
	if !ok {
		return nil, domain.NewSchemaError("templates."+tpl.ID, "layout %q is not loaded", tpl.Layout)
	}

	canvas, err := s.canvas(ctx, desc.Canvas)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to load canvas",
			slog.String("operation", "Generate"),
			slog.String("template", tpl.ID),
			slog.String("canvas", desc.Canvas),
			slog.Any("error", err),
		)
		return nil, err
	}
	font := s.font(ctx, desc.Font)

	start := time.Now()
	doc, err := s.render(ctx, tpl, desc, canvas, font, rec)
	s.recordCompose(ctx, tpl.ID, start, doc)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to render document",
			slog.String("operation", "Generate"),
			slog.String("template", tpl.ID),
			slog.Any("error", err),
		)
		return nil, err
	}

	for _, w := range doc.Warnings {
		s.logger.WarnContext(ctx, "layout overflow",
			slog.String("template", tpl.ID),
			slog.String("subject", w.Subject()),
			slog.Int("page", w.Page),
			slog.Int("dropped", w.Dropped),
			slog.String("reason", w.Reason),
		)
	}
	return doc, nil
}

// Compose assembles req.Input, checks it against every visible step of the
// template under req.Flags and renders it.
func (s *DocumentService) Compose(ctx context.Context, req ports.ComposeRequest) (*layout.Document, error) {
	tpl, ok := s.catalog.Template(req.Template)
	if !ok {
		return nil, unknownTemplate(req.Template)
	}
	flags, err := wizard.ParseFlags(req.Flags)
	if err != nil {
		return nil, err
	}
	rec, err := s.catalog.Assembler().Assemble(req.Input)
	if err != nil {
		return nil, err
	}

	if err := validateVisible(s.catalog.Navigator(), tpl, flags, rec); err != nil {
		return nil, err
	}

	return s.Generate(ctx, tpl.ID, rec)
}

// ComposeBatch runs Compose over reqs with at most Workers in flight.
func (s *DocumentService) ComposeBatch(ctx context.Context, reqs []ports.ComposeRequest) []ports.BatchResult {
	out := make([]ports.BatchResult, len(reqs))

	if s.limits.MaxBatch > 0 && len(reqs) > s.limits.MaxBatch {
		err := &domain.ValidationError{Fields: map[string]string{
			"requests": fmt.Sprintf("batch of %d exceeds the limit of %d", len(reqs), s.limits.MaxBatch),
		}}
		for i := range out {
			out[i].Err = err
		}
		return out
	}

	s.logger.InfoContext(ctx, "composing batch", slog.Int("size", len(reqs)))

	results := fanout.Run(ctx, s.limits.Workers, reqs, s.Compose)
	for i, r := range results {
		out[i] = ports.BatchResult{Document: r.Value, Err: r.Err}
	}
	return out
}

// validateVisible runs every step the flags leave visible against rec and
// folds the issues into a ValidationError, first message per location.
func validateVisible(nav *wizard.Navigator, tpl wizard.Template, flags wizard.Flags, rec record.Record) error {
	var issues []validate.Issue
	for _, id := range nav.Visible(tpl, flags) {
		if step, ok := nav.Step(id); ok {
			issues = append(issues, step.Validate(rec)...)
		}
	}
	if len(issues) == 0 {
		return nil
	}

	fields := make(map[string]string, len(issues))
	for _, is := range issues {
		if _, seen := fields[is.Location]; !seen {
			fields[is.Location] = is.Message
		}
	}
	return &domain.ValidationError{Fields: fields}
}

type renderResult struct {
	doc *layout.Document
	err error
}

// render runs composition in its own goroutine so a slow renderer is cut
// off at the configured timeout.
func (s *DocumentService) render(
	ctx context.Context,
	tpl wizard.Template,
	desc layout.Descriptor,
	canvas layout.Canvas,
	font *layout.Font,
	rec record.Record,
) (*layout.Document, error) {
	if s.limits.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.limits.Timeout)
		defer cancel()
	}

	done := make(chan renderResult, 1)
	go func() {
		comp := layout.Compose(rec, desc, s.catalog.Schema(), len(canvas.Pages))
		data, err := s.renderer.Render(ctx, canvas, font, comp)
		if err != nil {
			done <- renderResult{err: &domain.ResourceError{Resource: "renderer", Fatal: true, Err: err}}
			return
		}
		done <- renderResult{doc: &layout.Document{
			Bytes:       data,
			ContentType: s.renderer.ContentType(),
			Warnings:    comp.Warnings,
		}}
	}()

	select {
	case r := <-done:
		return r.doc, r.err
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, &domain.ResourceError{
				Resource: "compose:" + tpl.ID,
				Fatal:    true,
				Err:      fmt.Errorf("composition exceeded %s: %w", s.limits.Timeout, ctx.Err()),
			}
		}
		return nil, ctx.Err()
	}
}

// canvas returns the parsed canvas for ref. A canvas that cannot be fetched
// or parsed is a fatal resource error.
func (s *DocumentService) canvas(ctx context.Context, ref string) (layout.Canvas, error) {
	if c, ok := s.canvases.Load(ref); ok {
		return c, nil
	}

	data, err := s.assets.Fetch(ctx, ref)
	if err != nil {
		return layout.Canvas{}, &domain.ResourceError{Resource: ref, Fatal: true, Err: err}
	}
	c, err := layout.ParseCanvas(data)
	if err != nil {
		return layout.Canvas{}, &domain.ResourceError{Resource: ref, Fatal: true, Err: err}
	}

	return s.canvases.Store(ref, c), nil
}

// font returns the font for ref, or nil when none is configured or it
// cannot be loaded. Load failures are logged and retried on the next call.
func (s *DocumentService) font(ctx context.Context, ref string) *layout.Font {
	if ref == "" {
		return nil
	}
	if f, ok := s.fonts.Load(ref); ok {
		return f
	}

	data, err := s.assets.Fetch(ctx, ref)
	if err != nil {
		s.logger.WarnContext(ctx, "font unavailable, using built-in face",
			slog.String("font", ref),
			slog.Any("error", &domain.ResourceError{Resource: ref, Err: err}),
		)
		return nil
	}

	return s.fonts.Store(ref, &layout.Font{Name: ref, Data: data})
}

func (s *DocumentService) recordCompose(ctx context.Context, templateID string, start time.Time, doc *layout.Document) {
	if s.metrics == nil {
		return
	}

	result := "success"
	if doc == nil {
		result = "error"
	}
	s.metrics.ComposeDuration.Record(ctx, time.Since(start).Seconds(), metric.WithAttributes(
		telemetry.AttrTemplate.String(templateID),
		telemetry.AttrResult.String(result),
	))
	if doc == nil {
		return
	}
	for _, w := range doc.Warnings {
		s.metrics.ComposeOverflow.Add(ctx, int64(w.Dropped), metric.WithAttributes(
			telemetry.AttrTemplate.String(templateID),
			telemetry.AttrGroup.String(w.Subject()),
		))
	}
}

func unknownTemplate(id string) error {
	return &domain.ValidationError{Fields: map[string]string{"template": fmt.Sprintf("unknown template %q", id)}}
}
