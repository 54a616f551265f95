// Package planner owns the subject and session collections and is the only
// code that mutates them. Every mutating operation validates its input,
// applies the change in memory, then saves through the Store once.
//
// A failed save does not undo the change: the method returns an error that
// matches apperrors.ErrPersistence and the in-memory state stays
// authoritative.
package planner

import (
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Tiliavir/study-time-planner/internal/apperrors"
	"github.com/Tiliavir/study-time-planner/internal/estimator"
	"github.com/Tiliavir/study-time-planner/internal/model"
	"github.com/Tiliavir/study-time-planner/internal/timecalc"
)

// Store is the persistence boundary. Load must not fail; it returns an
// empty document when nothing usable is stored.
type Store interface {
	Load() model.Document
	Save(doc model.Document) error
}

// Planner is the explicit planning context for one user.
type Planner struct {
	mu       sync.Mutex
	subjects []model.Subject
	sessions []model.Session

	store             Store
	estimator         estimator.Estimator
	validate          *validator.Validate
	logger            *zap.Logger
	now               func() time.Time
	newID             func() string
	defaultDailyHours float64
}

// Option customises a Planner.
type Option func(*Planner)

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(p *Planner) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(p *Planner) { p.now = now }
}

// WithEstimator swaps the recommended-hours strategy.
func WithEstimator(e estimator.Estimator) Option {
	return func(p *Planner) { p.estimator = e }
}

// WithIDGenerator replaces the session ID generator.
func WithIDGenerator(gen func() string) Option {
	return func(p *Planner) { p.newID = gen }
}

// WithValidator shares a validator instance.
func WithValidator(v *validator.Validate) Option {
	return func(p *Planner) {
		if v != nil {
			p.validate = v
		}
	}
}

// WithDefaultDailyHours sets the daily cap given to subjects that have none.
func WithDefaultDailyHours(h float64) Option {
	return func(p *Planner) {
		if h > 0 {
			p.defaultDailyHours = h
		}
	}
}

// New loads the stored document and returns a ready planner.
func New(store Store, opts ...Option) *Planner {
	p := &Planner{
		store:             store,
		estimator:         estimator.NewRegression(),
		validate:          validator.New(),
		logger:            zap.NewNop(),
		now:               time.Now,
		newID:             uuid.NewString,
		defaultDailyHours: model.DefaultDailyStudyHours,
	}
	for _, opt := range opts {
		opt(p)
	}

	doc := store.Load()
	p.subjects = append([]model.Subject{}, doc.Subjects...)
	p.sessions = append([]model.Session{}, doc.Sessions...)
	for i := range p.subjects {
		if p.subjects[i].DailyStudyHours <= 0 {
			p.subjects[i].DailyStudyHours = p.defaultDailyHours
		}
	}
	for i := range p.sessions {
		if p.sessions[i].ID == "" {
			p.sessions[i].ID = p.newID()
		}
	}

	p.logger.Debug("planner_loaded",
		zap.Int("subjects", len(p.subjects)),
		zap.Int("sessions", len(p.sessions)))
	return p
}

func (p *Planner) today() timecalc.Date {
	return timecalc.DateOf(p.now())
}

// save persists the current state. Callers hold p.mu.
func (p *Planner) save(op string) error {
	doc := model.Document{
		Subjects: append([]model.Subject{}, p.subjects...),
		Sessions: append([]model.Session{}, p.sessions...),
	}
	if err := p.store.Save(doc); err != nil {
		p.logger.Error("save_failed", zap.String("operation", op), zap.Error(err))
		return apperrors.Wrap(err, apperrors.ErrPersistence.Code, apperrors.ErrPersistence.Message)
	}
	return nil
}
