package publisher

import (
	"context"
	"strings"
	"time"

	"github.com/goliatone/go-bridgepage/content"
	"github.com/goliatone/go-bridgepage/hosting"
	"github.com/goliatone/go-bridgepage/internal/identity"
	"github.com/goliatone/go-bridgepage/internal/logging"
	"github.com/goliatone/go-bridgepage/pkg/interfaces"
	"github.com/goliatone/go-bridgepage/renderer"
)

// Service runs the page generation pipeline: validate the content, render
// the HTML artifact, persist it, and verify the stored copy is readable.
// Every stage transition is observable through Status and Subscribe.
type Service interface {
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResult, error)
	Status(pageID string) Status
	Subscribe(ctx context.Context, pageID string) <-chan Status
}

// GenerateRequest describes one generation attempt. PageID is optional; a
// deterministic identifier is derived from the headline when absent.
type GenerateRequest struct {
	Content content.PageContent
	PageID  string
	UserID  string
}

// GenerateResult is returned on a successful run.
type GenerateResult struct {
	PageID      string
	PageURL     string
	HTML        string
	GeneratedAt time.Time
}

type service struct {
	renderer    *renderer.Renderer
	store       hosting.Store
	tracker     *statusTracker
	broadcaster *statusBroadcaster
	ids         *content.IDGenerator
	sink        interfaces.EventSink
	logger      interfaces.Logger
	clock       func() time.Time
	stageDelay  time.Duration
}

// Option configures a Service.
type Option func(*service)

// WithClock overrides the time source, mainly for tests.
func WithClock(clock func() time.Time) Option {
	return func(s *service) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// WithStageDelay inserts a pause between stages so subscribers can watch
// the pipeline progress. Zero disables pacing.
func WithStageDelay(delay time.Duration) Option {
	return func(s *service) {
		if delay >= 0 {
			s.stageDelay = delay
		}
	}
}

// WithEventSink records a page_generated event after each successful run.
func WithEventSink(sink interfaces.EventSink) Option {
	return func(s *service) {
		if sink != nil {
			s.sink = sink
		}
	}
}

// WithIDGenerator overrides how page identifiers are derived from headlines.
func WithIDGenerator(ids *content.IDGenerator) Option {
	return func(s *service) {
		if ids != nil {
			s.ids = ids
		}
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger interfaces.Logger) Option {
	return func(s *service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewService builds the generation pipeline on top of a renderer and a
// hosting store.
func NewService(r *renderer.Renderer, store hosting.Store, opts ...Option) (Service, error) {
	if r == nil {
		return nil, ErrRendererRequired
	}
	if store == nil {
		return nil, ErrStoreRequired
	}
	svc := &service{
		renderer:    r,
		store:       store,
		tracker:     newStatusTracker(),
		broadcaster: newStatusBroadcaster(),
		ids:         content.NewIDGenerator(),
		logger:      logging.NoOp(),
		clock:       time.Now,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc, nil
}

func (s *service) Status(pageID string) Status {
	return s.tracker.get(pageID)
}

func (s *service) Subscribe(ctx context.Context, pageID string) <-chan Status {
	return s.broadcaster.Subscribe(ctx, pageID)
}

func (s *service) Generate(ctx context.Context, req GenerateRequest) (*GenerateResult, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if strings.TrimSpace(req.UserID) == "" {
		return nil, ErrUserIDRequired
	}

	pageID := strings.TrimSpace(req.PageID)
	if pageID == "" {
		pageID = s.ids.PageID(req.Content.Headline)
	}

	if !s.tracker.acquire(pageID) {
		return nil, ErrGenerationInFlight
	}
	defer s.tracker.release(pageID)

	logger := logging.WithFields(s.logger, map[string]any{
		"page_id": pageID,
		"user_id": req.UserID,
	})
	logger.Info("starting page generation")

	s.emit(Status{PageID: pageID, Stage: StageValidating, Timestamp: s.clock()})
	result := content.Validate(req.Content)
	if !result.Valid {
		message := "Validation failed: " + strings.Join(result.Errors, ", ")
		return nil, s.fail(logger, pageID, StageValidating, message, ErrValidationFailed)
	}
	if err := s.pause(ctx); err != nil {
		return nil, s.fail(logger, pageID, StageValidating, err.Error(), err)
	}

	s.emit(Status{PageID: pageID, Stage: StageGenerating, Timestamp: s.clock()})
	html, err := s.renderer.Render(req.Content, pageID)
	if err != nil {
		return nil, s.fail(logger, pageID, StageGenerating, err.Error(), err)
	}
	if err := s.pause(ctx); err != nil {
		return nil, s.fail(logger, pageID, StageGenerating, err.Error(), err)
	}

	s.emit(Status{PageID: pageID, Stage: StageUploading, Timestamp: s.clock()})
	page := hosting.HostedPage{
		ID:        pageID,
		RecordID:  identity.HostedPageUUID(pageID),
		UserID:    req.UserID,
		Content:   req.Content,
		HTML:      html,
		CreatedAt: s.clock(),
	}
	pageURL, err := s.store.Put(ctx, page)
	if err != nil {
		return nil, s.fail(logger, pageID, StageUploading, err.Error(), err)
	}
	if err := s.pause(ctx); err != nil {
		return nil, s.fail(logger, pageID, StageUploading, err.Error(), err)
	}

	s.emit(Status{PageID: pageID, Stage: StageConfiguring, Timestamp: s.clock()})
	if err := s.pause(ctx); err != nil {
		return nil, s.fail(logger, pageID, StageConfiguring, err.Error(), err)
	}

	s.emit(Status{PageID: pageID, Stage: StageTesting, Timestamp: s.clock()})
	stored, err := s.store.Get(ctx, pageID)
	if err != nil || stored == nil || stored.HTML != html {
		if err == nil {
			err = ErrPageNotAccessible
		}
		return nil, s.fail(logger, pageID, StageTesting, "Generated page is not accessible", err)
	}
	if err := s.pause(ctx); err != nil {
		return nil, s.fail(logger, pageID, StageTesting, err.Error(), err)
	}

	generatedAt := s.clock()
	s.emit(Status{PageID: pageID, Stage: StageComplete, Timestamp: generatedAt, PageURL: pageURL})
	logger.Info("page generation complete", "page_url", pageURL)

	s.record(ctx, pageID, req.UserID, pageURL)

	return &GenerateResult{
		PageID:      pageID,
		PageURL:     pageURL,
		HTML:        html,
		GeneratedAt: generatedAt,
	}, nil
}

// emit records the status and fans it out to subscribers.
func (s *service) emit(status Status) {
	s.tracker.set(status)
	s.broadcaster.Broadcast(status)
}

// fail emits the failed status and returns a GenerationError carrying the
// same message, so callers and subscribers observe identical text.
func (s *service) fail(logger interfaces.Logger, pageID string, stage Stage, message string, cause error) error {
	logger.Error("page generation failed", "stage", string(stage), "error", message)
	s.emit(Status{PageID: pageID, Stage: StageFailed, Timestamp: s.clock(), Error: message})
	return &GenerationError{
		PageID:  pageID,
		Stage:   stage,
		Message: message,
		Cause:   cause,
	}
}

// pause paces stage transitions while honouring context cancellation.
func (s *service) pause(ctx context.Context) error {
	if s.stageDelay <= 0 {
		if err := ctx.Err(); err != nil {
			return ErrGenerationCancelled
		}
		return nil
	}
	timer := time.NewTimer(s.stageDelay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ErrGenerationCancelled
	case <-timer.C:
		return nil
	}
}

func (s *service) record(ctx context.Context, pageID, userID, pageURL string) {
	if s.sink == nil {
		return
	}
	event := interfaces.Event{
		PageID:    pageID,
		Type:      "page_generated",
		Timestamp: s.clock(),
		Data: map[string]any{
			"user_id":  userID,
			"page_url": pageURL,
		},
	}
	if err := s.sink.Record(ctx, event); err != nil {
		s.logger.Warn("failed to record generation event", "page_id", pageID, "error", err)
	}
}
