// Package app provides the application services that drive dossier sessions
// and document generation. They coordinate domain logic with storage and
// asset adapters through port interfaces.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/metric"

	appctx "github.com/jsamuelsen11/go-dossier-service/internal/app/context"
	"github.com/jsamuelsen11/go-dossier-service/internal/catalog"
	"github.com/jsamuelsen11/go-dossier-service/internal/domain"
	"github.com/jsamuelsen11/go-dossier-service/internal/domain/layout"
	"github.com/jsamuelsen11/go-dossier-service/internal/domain/record"
	"github.com/jsamuelsen11/go-dossier-service/internal/domain/validate"
	"github.com/jsamuelsen11/go-dossier-service/internal/domain/wizard"
	"github.com/jsamuelsen11/go-dossier-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/go-dossier-service/internal/ports"
)

var _ ports.WizardService = (*WizardService)(nil)

// Transition directions recorded on dossier.step.transitions.
const (
	directionForward = "forward"
	directionBack    = "back"
	directionSkip    = "skip"
)

// WizardService implements ports.WizardService. Operations on one session
// run one at a time; different sessions never wait on each other.
type WizardService struct {
	catalog  *catalog.Catalog
	sessions ports.SessionRepository
	docs     ports.DocumentService
	metrics  *telemetry.Metrics
	logger   *slog.Logger
	now      func() time.Time
	newID    func() string
	locks    *keyedMutex
}

// WizardOption configures a WizardService.
type WizardOption func(*WizardService)

// WithClock sets the clock used for session timestamps.
func WithClock(now func() time.Time) WizardOption {
	return func(s *WizardService) { s.now = now }
}

// WithIDGenerator sets the session id generator.
func WithIDGenerator(gen func() string) WizardOption {
	return func(s *WizardService) { s.newID = gen }
}

// NewWizardService creates a WizardService. A nil metrics disables metric
// recording and a nil logger discards logs.
func NewWizardService(
	cat *catalog.Catalog,
	sessions ports.SessionRepository,
	docs ports.DocumentService,
	metrics *telemetry.Metrics,
	logger *slog.Logger,
	opts ...WizardOption,
) *WizardService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &WizardService{
		catalog:  cat,
		sessions: sessions,
		docs:     docs,
		metrics:  metrics,
		logger:   logger,
		now:      time.Now,
		newID:    uuid.NewString,
		locks:    newKeyedMutex(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Templates returns the catalog templates.
func (s *WizardService) Templates(_ context.Context) []wizard.Template {
	return slices.Clone(s.catalog.Templates())
}

// Start opens a session positioned on the first visible step.
func (s *WizardService) Start(ctx context.Context, templateID string, flags map[string]bool) (*ports.StepOutcome, error) {
	tpl, ok := s.catalog.Template(templateID)
	if !ok {
		return nil, unknownTemplate(templateID)
	}
	parsed, err := wizard.ParseFlags(flags)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	sess := &wizard.Session{
		ID:         s.newID(),
		TemplateID: tpl.ID,
		Flags:      parsed,
		Record:     record.New(),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	sess.StepID = s.catalog.Navigator().Next(wizard.StartStep, tpl, parsed)

	s.logger.InfoContext(ctx, "starting session",
		slog.String("session_id", sess.ID),
		slog.String("template", tpl.ID),
		slog.Int("step", sess.StepID),
	)

	if err := s.sessions.Create(ctx, sess); err != nil {
		s.logger.ErrorContext(ctx, "failed to create session",
			slog.String("operation", "Start"),
			slog.String("session_id", sess.ID),
			slog.Any("error", err),
		)
		return nil, err
	}

	return s.outcome(sess, true), nil
}

// Get returns the session and its current step.
func (s *WizardService) Get(ctx context.Context, id string) (*ports.StepOutcome, error) {
	sess, err := s.sessions.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.outcome(sess, len(sess.Issues) == 0), nil
}

// Submit merges raw into the record and validates the current step. A clean
// step advances the session; the final visible step completes it instead.
// Issues keep the session in place with the merged values saved, so the
// step can be shown again with what was typed.
func (s *WizardService) Submit(ctx context.Context, id string, raw record.RawInput) (*ports.StepOutcome, error) {
	unlock := s.locks.Lock(id)
	defer unlock()

	sc := appctx.New(ctx)
	sess, tpl, err := s.load(sc, id)
	if err != nil {
		return nil, err
	}
	nav := s.catalog.Navigator()
	next := sess.Clone()
	next.UpdatedAt = s.now().UTC()

	if sess.StepID == wizard.StartStep {
		if len(raw.Fields) > 0 || len(raw.Groups) > 0 {
			return nil, domain.NewSchemaError("step", "the start state collects no input")
		}
		next.StepID = nav.Next(wizard.StartStep, tpl, sess.Flags)
		next.Issues = nil
		if err := s.save(sc, next); err != nil {
			return nil, err
		}
		s.recordTransition(ctx, tpl.ID, directionForward)
		return s.outcome(next, true), nil
	}

	step, ok := nav.Step(sess.StepID)
	if !ok {
		return nil, fmt.Errorf("session %s is on undeclared step %d: %w", id, sess.StepID, domain.ErrConflict)
	}
	if err := checkInputKeys(step, raw); err != nil {
		return nil, err
	}

	merged, err := s.catalog.Assembler().Merge(sess.Record, raw)
	if err != nil {
		return nil, err
	}
	next.Record = merged
	next.Issues = step.Validate(merged)

	accepted := len(next.Issues) == 0
	if accepted {
		to := nav.Next(sess.StepID, tpl, sess.Flags)
		if to == sess.StepID {
			next.Completed = true
		}
		next.StepID = to
	}

	s.logger.InfoContext(ctx, "step submitted",
		slog.String("session_id", id),
		slog.Int("step", sess.StepID),
		slog.Bool("accepted", accepted),
		slog.Int("issues", len(next.Issues)),
	)

	if err := s.save(sc, next); err != nil {
		return nil, err
	}
	if accepted && next.StepID != sess.StepID {
		s.recordTransition(ctx, tpl.ID, directionForward)
	}
	return s.outcome(next, accepted), nil
}

// Back moves to the previous visible step. Stored values are kept.
func (s *WizardService) Back(ctx context.Context, id string) (*ports.StepOutcome, error) {
	unlock := s.locks.Lock(id)
	defer unlock()

	sc := appctx.New(ctx)
	sess, tpl, err := s.load(sc, id)
	if err != nil {
		return nil, err
	}

	next := sess.Clone()
	next.StepID = s.catalog.Navigator().Prev(sess.StepID, tpl, sess.Flags)
	next.Issues = nil
	next.Completed = false
	next.UpdatedAt = s.now().UTC()

	if err := s.save(sc, next); err != nil {
		return nil, err
	}
	s.recordTransition(ctx, tpl.ID, directionBack)
	return s.outcome(next, true), nil
}

// SetFlags merges flags into the session. When the current step becomes
// skipped the session moves forward to the next visible step, or back when
// nothing visible remains ahead. When a step behind the current one becomes
// visible the session rewinds to it, since its input was never collected.
func (s *WizardService) SetFlags(ctx context.Context, id string, flags map[string]bool) (*ports.StepOutcome, error) {
	parsed, err := wizard.ParseFlags(flags)
	if err != nil {
		return nil, err
	}

	unlock := s.locks.Lock(id)
	defer unlock()

	sc := appctx.New(ctx)
	sess, tpl, err := s.load(sc, id)
	if err != nil {
		return nil, err
	}

	nav := s.catalog.Navigator()
	next := sess.Clone()
	next.Flags = sess.Flags.With(parsed)
	next.UpdatedAt = s.now().UTC()

	moved := false
	if step, ok := nav.Step(sess.StepID); ok && step.Skipped(next.Flags) {
		to := nav.Next(sess.StepID, tpl, next.Flags)
		if to == sess.StepID {
			to = nav.Prev(sess.StepID, tpl, next.Flags)
		}
		s.logger.InfoContext(ctx, "current step skipped by flags",
			slog.String("session_id", id),
			slog.Int("from", sess.StepID),
			slog.Int("to", to),
		)
		next.StepID = to
		next.Issues = nil
		next.Completed = false
		moved = true
	}
	if to, ok := revealedBefore(nav, tpl, sess, next.Flags); ok {
		s.logger.InfoContext(ctx, "earlier step revealed by flags",
			slog.String("session_id", id),
			slog.Int("from", next.StepID),
			slog.Int("to", to),
		)
		next.StepID = to
		next.Issues = nil
		next.Completed = false
		moved = true
	}

	if err := s.save(sc, next); err != nil {
		return nil, err
	}
	if moved {
		s.recordTransition(ctx, tpl.ID, directionSkip)
	}
	return s.outcome(next, len(next.Issues) == 0), nil
}

// Delete discards a session.
func (s *WizardService) Delete(ctx context.Context, id string) error {
	unlock := s.locks.Lock(id)
	defer unlock()

	s.logger.InfoContext(ctx, "deleting session", slog.String("session_id", id))

	if err := s.sessions.Delete(ctx, id); err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.ErrorContext(ctx, "failed to delete session",
				slog.String("operation", "Delete"),
				slog.String("session_id", id),
				slog.Any("error", err),
			)
		}
		return err
	}
	return nil
}

// Document renders the session record once the session sits on its last
// step or has completed. Every step visible under the current flags is
// validated again first.
func (s *WizardService) Document(ctx context.Context, id string) (*layout.Document, error) {
	sess, err := s.sessions.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	tpl, ok := s.catalog.Template(sess.TemplateID)
	if !ok {
		return nil, fmt.Errorf("session %s uses removed template %q: %w", id, sess.TemplateID, domain.ErrConflict)
	}
	if !sess.Completed && sess.StepID != tpl.Last() {
		return nil, fmt.Errorf("session %s is on step %d of %d: %w", id, sess.StepID, tpl.Last(), domain.ErrConflict)
	}
	if err := validateVisible(s.catalog.Navigator(), tpl, sess.Flags, sess.Record); err != nil {
		s.logger.WarnContext(ctx, "session record incomplete for its visible steps",
			slog.String("session_id", id),
			slog.Any("error", err),
		)
		return nil, err
	}
	return s.docs.Generate(ctx, tpl.ID, sess.Record)
}

// PurgeExpired deletes sessions idle for longer than ttl.
func (s *WizardService) PurgeExpired(ctx context.Context, ttl time.Duration) (int, error) {
	cutoff := s.now().UTC().Add(-ttl)
	n, err := s.sessions.DeleteExpired(ctx, cutoff)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to purge sessions",
			slog.String("operation", "PurgeExpired"),
			slog.Time("cutoff", cutoff),
			slog.Any("error", err),
		)
		return 0, err
	}
	if n > 0 {
		s.logger.InfoContext(ctx, "purged expired sessions", slog.Int("count", n))
	}
	return n, nil
}

func (s *WizardService) load(sc *appctx.Scope, id string) (*wizard.Session, wizard.Template, error) {
	sess, err := appctx.GetOrFetch(sc, sessionKey(id), func(ctx context.Context) (*wizard.Session, error) {
		return s.sessions.Get(ctx, id)
	})
	if err != nil {
		return nil, wizard.Template{}, err
	}
	tpl, ok := s.catalog.Template(sess.TemplateID)
	if !ok {
		return nil, wizard.Template{}, fmt.Errorf("session %s uses removed template %q: %w", id, sess.TemplateID, domain.ErrConflict)
	}
	return sess, tpl, nil
}

// save stages next in the scope and commits it.
func (s *WizardService) save(sc *appctx.Scope, next *wizard.Session) error {
	err := sc.Stage(sessionKey(next.ID), next, appctx.Func{
		Desc: "save session " + next.ID,
		Do: func(ctx context.Context) error {
			return s.sessions.Save(ctx, next)
		},
	})
	if err == nil {
		err = sc.Commit(sc)
	}
	if err != nil {
		s.logger.ErrorContext(sc, "failed to save session",
			slog.String("operation", "save"),
			slog.String("session_id", next.ID),
			slog.Any("error", err),
		)
	}
	return err
}

func (s *WizardService) outcome(sess *wizard.Session, accepted bool) *ports.StepOutcome {
	out := &ports.StepOutcome{
		Session:  sess,
		Accepted: accepted,
		Issues:   sess.Issues,
	}
	if step, ok := s.catalog.Navigator().Step(sess.StepID); ok {
		out.Step = &step
	}
	return out
}

func (s *WizardService) recordTransition(ctx context.Context, templateID, direction string) {
	if s.metrics == nil {
		return
	}
	s.metrics.StepTransitions.Add(ctx, 1, metric.WithAttributes(
		telemetry.AttrTemplate.String(templateID),
		telemetry.AttrDirection.String(direction),
	))
}

// checkInputKeys rejects raw keys the step does not collect.
func checkInputKeys(step wizard.StepDefinition, raw record.RawInput) error {
	fields := step.FieldKeys()
	for key := range raw.Fields {
		if !slices.Contains(fields, key) {
			return domain.NewSchemaError("fields."+key, "not collected by step %d", step.ID)
		}
	}
	for name := range raw.Groups {
		if !slices.ContainsFunc(step.Tables, func(t validate.TableRule) bool { return t.Group == name }) {
			return domain.NewSchemaError("groups."+name, "not collected by step %d", step.ID)
		}
	}
	return nil
}

// revealedBefore returns the first step, in template order, that flags make
// visible while it was skipped under the session's old flags and that lies
// before the current step. A completed session counts every such step.
func revealedBefore(nav *wizard.Navigator, tpl wizard.Template, sess *wizard.Session, flags wizard.Flags) (int, bool) {
	if sess.StepID == wizard.StartStep {
		return 0, false
	}
	was := nav.Visible(tpl, sess.Flags)
	cur := slices.Index(tpl.Sequence, sess.StepID)
	for _, id := range nav.Visible(tpl, flags) {
		if slices.Contains(was, id) {
			continue
		}
		if sess.Completed || slices.Index(tpl.Sequence, id) < cur {
			return id, true
		}
	}
	return 0, false
}

func sessionKey(id string) string { return "session:" + id }
