package assessment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sethvargo/go-retry"
	"go.uber.org/zap"

	"github.com/artem13815/interview/pkg/candidate"
	"github.com/artem13815/interview/pkg/checkpoint"
	"github.com/artem13815/interview/pkg/evaluation"
	"github.com/artem13815/interview/pkg/interview"
	"github.com/artem13815/interview/pkg/logger"
	"github.com/artem13815/interview/pkg/question"
	"github.com/artem13815/interview/pkg/resume"
)

// UseCase runs interviews from start to the stored candidate record.
type UseCase interface {
	Start(ctx context.Context, info resume.CandidateInfo) (View, error)
	Get(ctx context.Context, id string) (View, error)
	SetDraft(ctx context.Context, id, text string) (View, error)
	Submit(ctx context.Context, id string, sub Submission) (View, error)
	Tick(ctx context.Context, id string) (View, error)
	Reset(ctx context.Context, id string) error
}

type Config struct {
	// TickInterval is the countdown cadence. Zero disables the driver;
	// time then only moves through Tick.
	TickInterval time.Duration
	// RecordRetry is the first delay before storing a finished interview's
	// record again. It doubles up to maxRecordRetry.
	RecordRetry time.Duration
	Evaluator   *evaluation.Evaluator
	Clock       func() time.Time
}

const (
	defaultRecordRetry = 500 * time.Millisecond
	maxRecordRetry     = time.Minute
)

type Service struct {
	bank  question.Bank
	store candidate.Store
	cp    *checkpoint.Checkpointer
	log   *zap.Logger
	cfg   Config

	mu       sync.Mutex
	sessions map[string]*entry
	closed   bool
	wg       sync.WaitGroup

	// ctx is cancelled by Close; background goroutines run under it.
	ctx    context.Context
	cancel context.CancelFunc
}

type entry struct {
	mu       sync.Mutex
	id       string
	session  *interview.Session
	recordID string
	stop     chan struct{}
	stopOnce sync.Once
	retrying bool
}

func (e *entry) halt() {
	e.stopOnce.Do(func() { close(e.stop) })
}

func NewService(bank question.Bank, store candidate.Store, cp *checkpoint.Checkpointer, cfg Config, log *zap.Logger) *Service {
	if cfg.Evaluator == nil {
		cfg.Evaluator = evaluation.NewEvaluator(evaluation.DefaultPolicy())
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	if cfg.RecordRetry <= 0 {
		cfg.RecordRetry = defaultRecordRetry
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Service{
		bank:     bank,
		store:    store,
		cp:       cp,
		log:      logger.OrNop(log),
		cfg:      cfg,
		sessions: make(map[string]*entry),
		ctx:      ctx,
		cancel:   cancel,
	}
}

func (s *Service) sessionOptions() []interview.Option {
	return []interview.Option{
		interview.WithEvaluator(s.cfg.Evaluator),
		interview.WithClock(s.cfg.Clock),
	}
}

func (s *Service) Start(ctx context.Context, info resume.CandidateInfo) (View, error) {
	info, err := validateCandidate(info)
	if err != nil {
		return View{}, err
	}
	uid, err := uuid.NewV7()
	if err != nil {
		return View{}, fmt.Errorf("generate session id: %w", err)
	}

	sess := interview.New(s.sessionOptions()...)
	if err := sess.Start(info, s.bank.Questions()); err != nil {
		return View{}, err
	}

	e := &entry{id: uid.String(), session: sess, stop: make(chan struct{})}
	e.mu.Lock()
	defer e.mu.Unlock()
	s.save(ctx, e)

	s.mu.Lock()
	s.sessions[e.id] = e
	s.startDriver(e)
	s.mu.Unlock()

	s.log.Info("interview started",
		zap.String("session", e.id),
		zap.String("candidate", info.Name),
		zap.Int("questions", len(sess.Questions())),
	)
	return view(e), nil
}

func (s *Service) Get(ctx context.Context, id string) (View, error) {
	e, err := s.lookup(ctx, id)
	if err != nil {
		return View{}, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return view(e), nil
}

func (s *Service) SetDraft(ctx context.Context, id, text string) (View, error) {
	e, err := s.lookup(ctx, id)
	if err != nil {
		return View{}, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.session.SetDraft(text); err != nil {
		return View{}, err
	}
	s.save(ctx, e)
	return view(e), nil
}

func (s *Service) Submit(ctx context.Context, id string, sub Submission) (View, error) {
	e, err := s.lookup(ctx, id)
	if err != nil {
		return View{}, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.session.IsActive() && sub.QuestionIndex != e.session.CurrentIndex() {
		s.log.Debug("stale answer ignored",
			zap.String("session", id),
			zap.Int("answered", sub.QuestionIndex),
			zap.Int("current", e.session.CurrentIndex()),
		)
		return view(e), ErrStaleAnswer
	}
	out, err := e.session.SubmitAnswer(sub.Text)
	if err != nil {
		return View{}, err
	}
	return s.afterAnswer(ctx, e, out, "submit")
}

// Tick advances the countdown by one second. The driver calls it on every
// interval; with the driver disabled callers do.
func (s *Service) Tick(ctx context.Context, id string) (View, error) {
	e, err := s.lookup(ctx, id)
	if err != nil {
		return View{}, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return s.tick(ctx, e)
}

func (s *Service) tick(ctx context.Context, e *entry) (View, error) {
	out, err := e.session.Tick()
	if err != nil {
		return View{}, err
	}
	if out == interview.Ticked {
		s.save(ctx, e)
		return view(e), nil
	}
	return s.afterAnswer(ctx, e, out, "timeout")
}

// afterAnswer runs with e.mu held.
func (s *Service) afterAnswer(ctx context.Context, e *entry, out interview.Outcome, trigger string) (View, error) {
	if out != interview.Completed {
		s.save(ctx, e)
		s.log.Debug("interview advanced",
			zap.String("session", e.id),
			zap.String("trigger", trigger),
			zap.Int("question", e.session.CurrentIndex()),
		)
		return view(e), nil
	}

	e.halt()
	res := e.session.Result()
	s.log.Info("interview completed",
		zap.String("session", e.id),
		zap.String("trigger", trigger),
		zap.Int("score", res.Score),
	)

	if err := s.storeRecord(ctx, e); err != nil {
		s.log.Error("store candidate record, retrying in background",
			zap.String("session", e.id),
			zap.Error(err),
		)
		s.save(ctx, e)
		s.mu.Lock()
		s.startRetry(e)
		s.mu.Unlock()
	}
	return view(e), nil
}

// storeRecord adds the finished interview to the candidate store and
// drops the session from memory once its checkpoint carries the record id.
// Runs with e.mu held.
func (s *Service) storeRecord(ctx context.Context, e *entry) error {
	rec, err := s.store.Add(ctx, record(e.session))
	if err != nil {
		return fmt.Errorf("store candidate record: %w", err)
	}
	e.recordID = rec.ID
	if s.save(ctx, e) {
		s.forget(e)
	}
	return nil
}

// startRetry runs with s.mu held and e locked or not yet shared.
func (s *Service) startRetry(e *entry) {
	if s.closed || e.retrying {
		return
	}
	e.retrying = true
	s.wg.Add(1)
	go s.retryRecord(e)
}

func (s *Service) retryRecord(e *entry) {
	defer s.wg.Done()
	b := retry.WithCappedDuration(maxRecordRetry, retry.NewExponential(s.cfg.RecordRetry))
	err := retry.Do(s.ctx, b, func(ctx context.Context) error {
		e.mu.Lock()
		defer e.mu.Unlock()
		if e.recordID != "" || !e.session.IsComplete() {
			return nil
		}
		if err := s.storeRecord(ctx, e); err != nil {
			s.log.Warn("candidate record retry failed", zap.String("session", e.id), zap.Error(err))
			return retry.RetryableError(err)
		}
		s.log.Info("candidate record stored",
			zap.String("session", e.id),
			zap.String("record", e.recordID),
		)
		return nil
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		s.log.Error("give up storing candidate record", zap.String("session", e.id), zap.Error(err))
	}
}

func (s *Service) forget(e *entry) {
	s.mu.Lock()
	if s.sessions[e.id] == e {
		delete(s.sessions, e.id)
	}
	s.mu.Unlock()
}

// Reset drops the session. Safe to call in any state.
func (s *Service) Reset(ctx context.Context, id string) error {
	e, err := s.lookup(ctx, id)
	if err != nil {
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.halt()
	e.session.Reset()

	// Checkpoint goes first so a concurrent lookup cannot restore it.
	if err := s.cp.DeleteSession(ctx, id); err != nil {
		s.log.Error("delete session checkpoint", zap.String("session", id), zap.Error(err))
	}
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
	s.log.Info("interview reset", zap.String("session", id))
	return nil
}

// Close stops all countdown drivers and record retries and waits for them
// to exit.
func (s *Service) Close() {
	s.mu.Lock()
	s.closed = true
	s.cancel()
	s.mu.Unlock()
	s.wg.Wait()
}

// lookup returns the live entry or restores it from its checkpoint.
// Finished sessions whose record is stored are not kept in memory.
func (s *Service) lookup(ctx context.Context, id string) (*entry, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrNotFound
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.sessions[id]; ok {
		return e, nil
	}

	r, found, err := s.cp.LoadSession(ctx, id, s.sessionOptions()...)
	if err != nil {
		return nil, err
	}
	if !found || r.Session.Status() == interview.NotStarted {
		return nil, ErrNotFound
	}
	e := &entry{id: id, session: r.Session, recordID: r.RecordID, stop: make(chan struct{})}
	if r.Session.IsActive() || r.RecordPending() {
		s.sessions[id] = e
		s.startDriver(e)
		if r.RecordPending() {
			s.startRetry(e)
		}
		s.log.Info("interview restored",
			zap.String("session", id),
			zap.String("status", string(r.Session.Status())),
			zap.Int("question", r.Session.CurrentIndex()),
			zap.Bool("recordPending", r.RecordPending()),
		)
	}
	return e, nil
}

// startDriver runs with s.mu held.
func (s *Service) startDriver(e *entry) {
	if s.cfg.TickInterval <= 0 || s.closed || !e.session.IsActive() {
		return
	}
	s.wg.Add(1)
	go s.drive(e)
}

func (s *Service) drive(e *entry) {
	defer s.wg.Done()
	t := time.NewTicker(s.cfg.TickInterval)
	defer t.Stop()
	for {
		select {
		case <-s.ctx.Done():
			return
		case <-e.stop:
			return
		case <-t.C:
			e.mu.Lock()
			_, err := s.tick(s.ctx, e)
			active := e.session.IsActive()
			e.mu.Unlock()
			if err != nil && !errors.Is(err, interview.ErrInvalidTransition) {
				s.log.Warn("countdown tick failed", zap.String("session", e.id), zap.Error(err))
			}
			if !active {
				return
			}
		}
	}
}

// save runs with e.mu held. A failed checkpoint is logged; the in-memory
// session stays authoritative.
func (s *Service) save(ctx context.Context, e *entry) bool {
	if err := s.cp.SaveSession(ctx, e.id, e.session, e.recordID); err != nil {
		s.log.Error("save session checkpoint", zap.String("session", e.id), zap.Error(err))
		return false
	}
	return true
}

func view(e *entry) View {
	v := View{
		ID:            e.id,
		Snapshot:      e.session.Snapshot(),
		RecordID:      e.recordID,
		RecordPending: e.session.IsComplete() && e.recordID == "",
	}
	if p, ok := e.session.Progress(); ok {
		v.Progress = &p
	}
	return v
}

func record(sess *interview.Session) candidate.Record {
	res := sess.Result()
	return candidate.Record{
		Info:        sess.Candidate(),
		Questions:   sess.Questions(),
		Answers:     sess.Answers(),
		Score:       res.Score,
		Summary:     res.Summary,
		Evaluations: res.Evaluations,
		Transcript:  sess.AnsweredTranscript(),
	}
}

func validateCandidate(info resume.CandidateInfo) (resume.CandidateInfo, error) {
	info.Name = strings.TrimSpace(info.Name)
	info.Email = strings.TrimSpace(info.Email)
	info.Phone = strings.TrimSpace(info.Phone)
	info.ResumeRef = strings.TrimSpace(info.ResumeRef)
	switch {
	case info.Name == "":
		return info, fmt.Errorf("%w: name is required", ErrInvalidCandidate)
	case info.Email == "":
		return info, fmt.Errorf("%w: email is required", ErrInvalidCandidate)
	case !resume.ValidEmail(info.Email):
		return info, fmt.Errorf("%w: email is not valid", ErrInvalidCandidate)
	case info.Phone == "":
		return info, fmt.Errorf("%w: phone is required", ErrInvalidCandidate)
	}
	return info, nil
}
