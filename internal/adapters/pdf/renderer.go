// Package pdf renders composed dossiers to PDF with go-pdf/fpdf.
package pdf

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/jsamuelsen11/go-dossier-service/internal/domain/layout"
	"github.com/jsamuelsen11/go-dossier-service/internal/ports"
)

// ContentType is the media type of rendered documents.
const ContentType = "application/pdf"

const (
	embeddedFamily = "dossier"
	builtinFamily  = "Helvetica"
	producer       = "go-dossier-service"
)

// epoch is stamped as creation and modification date so identical inputs
// produce identical bytes.
var epoch = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

var _ ports.DocumentRenderer = (*Renderer)(nil)

// Renderer draws a canvas and its placements into a PDF.
type Renderer struct {
	logger *slog.Logger
}

// New returns a Renderer. A nil logger discards logs.
func New(logger *slog.Logger) *Renderer {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Renderer{logger: logger}
}

// ContentType implements ports.DocumentRenderer.
func (r *Renderer) ContentType() string { return ContentType }

// Render draws every canvas page with its static print, then the placements.
// A font that fpdf rejects is dropped in favour of Helvetica; coordinates do
// not depend on the face.
func (r *Renderer) Render(ctx context.Context, canvas layout.Canvas, font *layout.Font, comp layout.Composition) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if font != nil {
		out, err := r.draw(canvas, font, comp)
		if err == nil {
			return out, nil
		}
		r.logger.WarnContext(ctx, "font rejected, using built-in face",
			slog.String("font", font.Name),
			slog.Any("error", err),
		)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.draw(canvas, nil, comp)
}

func (r *Renderer) draw(canvas layout.Canvas, font *layout.Font, comp layout.Composition) ([]byte, error) {
	first := canvas.Pages[0]
	doc := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: orientation(first),
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: first.Width, Ht: first.Height},
	})
	doc.SetCreationDate(epoch)
	doc.SetModificationDate(epoch)
	doc.SetCatalogSort(true)
	doc.SetProducer(producer, false)
	doc.SetTitle(canvas.Name, true)
	doc.SetAutoPageBreak(false, 0)
	doc.SetMargins(0, 0, 0)

	family := builtinFamily
	translate := doc.UnicodeTranslatorFromDescriptor("")
	if font != nil {
		doc.AddUTF8FontFromBytes(embeddedFamily, "", font.Data)
		if doc.Err() {
			return nil, fmt.Errorf("loading font %q: %w", font.Name, doc.Error())
		}
		family = embeddedFamily
		translate = func(s string) string { return s }
	}

	byPage := make([][]layout.Placement, len(canvas.Pages))
	for _, p := range comp.Placements {
		if p.Page >= 0 && p.Page < len(byPage) {
			byPage[p.Page] = append(byPage[p.Page], p)
		}
	}

	for i, page := range canvas.Pages {
		doc.AddPageFormat(orientation(page), fpdf.SizeType{Wd: page.Width, Ht: page.Height})

		doc.SetLineWidth(0.5)
		for _, rule := range page.Rules {
			doc.Line(rule.X1, rule.Y1, rule.X2, rule.Y2)
		}
		for _, label := range page.Labels {
			doc.SetFont(family, "", sizeOr(label.Size, 9))
			doc.Text(label.X, label.Y, translate(label.Text))
		}
		for _, p := range byPage[i] {
			doc.SetFont(family, "", sizeOr(p.Size, 10))
			doc.Text(p.X, p.Y, translate(p.Text))
		}
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("writing pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func orientation(p layout.Page) string {
	if p.Width > p.Height {
		return "L"
	}
	return "P"
}

func sizeOr(v, def float64) float64 {
	if v > 0 {
		return v
	}
	return def
}
