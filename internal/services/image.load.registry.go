package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sourcegraph/conc"
	"github.com/sourcegraph/conc/panics"
	"golang.org/x/sync/semaphore"

	"github.com/joshuarp/remote-image-loader/internal/domain"
	"github.com/joshuarp/remote-image-loader/internal/domain/vo"
	"github.com/joshuarp/remote-image-loader/internal/shared/metrics"
	"github.com/joshuarp/remote-image-loader/internal/shared/uid"
)

type ResponseCache interface {
	Get(ctx context.Context, url string) (domain.CacheEntry, bool)
	Put(ctx context.Context, url string, body []byte) error
}

type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

type Downsampler interface {
	Decode(ctx context.Context, body []byte, target domain.PixelSize) (domain.Bitmap, error)
	DecodeNative(ctx context.Context, body []byte) (domain.Bitmap, error)
}

var errEmptyFetch = errors.New("fetch returned no bytes")

// RegistryOptions tunes a ConsumerRegistry. Zero values pick the defaults.
type RegistryOptions struct {
	// ScaleFactor converts logical target sizes to device pixels.
	ScaleFactor float64

	// MaxConcurrentDecodes bounds how many bitmaps are decoded at once.
	// Defaults to runtime.NumCPU().
	MaxConcurrentDecodes int64
}

// ConsumerRegistry keeps at most one live LoadSession per consumer. A new
// request for a consumer cancels the previous session in the same critical
// section that registers the new one.
type ConsumerRegistry struct {
	cache       ResponseCache
	fetcher     Fetcher
	downsampler Downsampler
	ids         uid.Generator
	dispatcher  Dispatcher
	logger      *slog.Logger
	metrics     *metrics.Collector

	scaleFactor float64
	decodeSlots *semaphore.Weighted
	fallbackSeq atomic.Uint64

	mu       sync.Mutex
	sessions map[string]*LoadSession
	wg       conc.WaitGroup
}

func NewConsumerRegistry(
	cache ResponseCache,
	fetcher Fetcher,
	downsampler Downsampler,
	ids uid.Generator,
	dispatcher Dispatcher,
	logger *slog.Logger,
	collector *metrics.Collector,
	opts RegistryOptions,
) *ConsumerRegistry {
	if logger == nil {
		logger = slog.Default()
	}
	if dispatcher == nil {
		dispatcher = InlineDispatcher{}
	}

	scale := opts.ScaleFactor
	if scale <= 0 {
		scale = 1
	}

	decodes := opts.MaxConcurrentDecodes
	if decodes <= 0 {
		decodes = int64(runtime.NumCPU())
	}

	return &ConsumerRegistry{
		cache:       cache,
		fetcher:     fetcher,
		downsampler: downsampler,
		ids:         ids,
		dispatcher:  dispatcher,
		logger:      logger,
		metrics:     collector,
		scaleFactor: scale,
		decodeSlots: semaphore.NewWeighted(decodes),
		sessions:    make(map[string]*LoadSession),
	}
}

// Request starts loading req for its consumer, superseding any session still
// in flight for that consumer. onComplete is called at most once, through the
// dispatcher, and never for a session that was superseded or cancelled.
//
// ctx supplies values for logging only; the pipeline itself is not cancelled
// by it.
func (r *ConsumerRegistry) Request(ctx context.Context, req domain.ResourceRequest, onComplete func(vo.DecodeResult)) *LoadSession {
	scale := req.Options.ScaleFactor
	if scale <= 0 {
		scale = r.scaleFactor
	}

	session := newLoadSession(r.sessionID(ctx, req.ConsumerID), req, req.TargetSize.ToPixels(scale))

	r.mu.Lock()
	if previous, ok := r.sessions[req.ConsumerID]; ok {
		previous.cancel()
	}
	r.sessions[req.ConsumerID] = session
	active := len(r.sessions)
	r.mu.Unlock()

	r.metrics.SetActiveSessions(active)

	sessionCtx := context.WithoutCancel(ctx)
	r.wg.Go(func() {
		r.run(sessionCtx, session, onComplete)
	})

	return session
}

// Active returns the live session registered for consumerID.
func (r *ConsumerRegistry) Active(consumerID string) (*LoadSession, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[consumerID]
	return session, ok
}

func (r *ConsumerRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.sessions)
}

// Cancel drops whatever session is live for consumerID. Its result, if any,
// will not be delivered.
func (r *ConsumerRegistry) Cancel(consumerID string) bool {
	r.mu.Lock()
	session, ok := r.sessions[consumerID]
	if ok {
		session.cancel()
		delete(r.sessions, consumerID)
	}
	active := len(r.sessions)
	r.mu.Unlock()

	r.metrics.SetActiveSessions(active)
	return ok
}

// CancelSession cancels session only if it is still the live session for its
// consumer, so it cannot hit a newer request.
func (r *ConsumerRegistry) CancelSession(session *LoadSession) bool {
	consumerID := session.request.ConsumerID

	r.mu.Lock()
	current, ok := r.sessions[consumerID]
	ok = ok && current == session
	if ok {
		session.cancel()
		delete(r.sessions, consumerID)
	}
	active := len(r.sessions)
	r.mu.Unlock()

	r.metrics.SetActiveSessions(active)
	return ok
}

// Close cancels every live session and waits for their goroutines to hand
// off. Deliveries already queued on the dispatcher are left to it.
func (r *ConsumerRegistry) Close() {
	r.mu.Lock()
	for consumerID, session := range r.sessions {
		session.cancel()
		delete(r.sessions, consumerID)
	}
	r.mu.Unlock()

	r.metrics.SetActiveSessions(0)
	r.wg.Wait()
}

func (r *ConsumerRegistry) sessionID(ctx context.Context, consumerID string) string {
	if r.ids != nil {
		id, err := r.ids.Generate(ctx)
		if err == nil {
			return id
		}
		r.logger.WarnContext(ctx, "session id generation failed", "consumer_id", consumerID, "error", err)
	}
	return fmt.Sprintf("local-%d", r.fallbackSeq.Add(1))
}

func (r *ConsumerRegistry) run(ctx context.Context, session *LoadSession, onComplete func(vo.DecodeResult)) {
	var (
		result vo.DecodeResult
		ok     bool
		pc     panics.Catcher
	)
	pc.Try(func() {
		result, ok = r.load(ctx, session)
	})

	// A panicking decoder or cache adapter fails this session only.
	if recovered := pc.Recovered(); recovered != nil {
		r.logger.ErrorContext(ctx, "load pipeline panicked",
			"session_id", session.id,
			"consumer_id", session.request.ConsumerID,
			"url", session.request.URL,
			"state", session.State().String(),
			"panic", recovered.Value,
			"stack", string(recovered.Stack),
		)
		result, ok = vo.Failure(session.id, session.request, vo.ErrorKindDecode, recovered.AsError()), true
	}

	if !ok {
		r.discard(ctx, session)
		return
	}

	session.transition(StateDelivering)
	r.dispatcher.Dispatch(func() {
		r.deliver(ctx, session, result, onComplete)
	})
}

// load walks the pipeline. It reports false when the session was cancelled at
// one of the checkpoints between steps.
func (r *ConsumerRegistry) load(ctx context.Context, session *LoadSession) (vo.DecodeResult, bool) {
	req := session.request
	logger := r.logger.With("session_id", session.id, "consumer_id", req.ConsumerID, "url", req.URL)

	if err := validateRequest(req); err != nil {
		return vo.Failure(session.id, req, vo.ErrorKindInvalidRequest, err), true
	}

	session.transition(StateCacheCheck)
	entry, hit := r.cache.Get(ctx, req.URL)
	if session.Cancelled() {
		return vo.DecodeResult{}, false
	}

	body := entry.Body
	if hit {
		session.transition(StateCacheHit)
		logger.DebugContext(ctx, "cache hit", "state", session.State().String())
	} else {
		session.transition(StateCacheMiss)
		session.transition(StateFetching)

		started := time.Now()
		fetched, err := r.fetcher.Fetch(ctx, req.URL)
		if err == nil && len(fetched) == 0 {
			err = errEmptyFetch
		}
		if err != nil {
			r.metrics.ObserveFetch("error", started)
			logger.WarnContext(ctx, "fetch failed", "error", err)
			return vo.Failure(session.id, req, vo.ErrorKindNetwork, err), true
		}
		r.metrics.ObserveFetch("ok", started)

		if req.Options.UseCache {
			if err := r.cache.Put(ctx, req.URL, fetched); err != nil {
				logger.WarnContext(ctx, "cache store failed", "error", err)
			}
		}
		body = fetched

		if session.Cancelled() {
			return vo.DecodeResult{}, false
		}
	}

	session.transition(StateDecoding)
	bitmap, err := r.decode(ctx, session, body)
	if err != nil {
		logger.WarnContext(ctx, "decode failed", "error", err)
		return vo.Failure(session.id, req, vo.ErrorKindDecode, err), true
	}

	if session.Cancelled() {
		return vo.DecodeResult{}, false
	}

	return vo.Success(session.id, req, bitmap), true
}

func (r *ConsumerRegistry) decode(ctx context.Context, session *LoadSession, body []byte) (domain.Bitmap, error) {
	if err := r.decodeSlots.Acquire(ctx, 1); err != nil {
		return domain.Bitmap{}, err
	}
	defer r.decodeSlots.Release(1)

	started := time.Now()
	if !session.request.Options.Downsample {
		defer r.metrics.ObserveDecode("native", started)
		return r.downsampler.DecodeNative(ctx, body)
	}

	defer r.metrics.ObserveDecode("downsample", started)
	return r.downsampler.Decode(ctx, body, session.target)
}

// deliver runs on the dispatcher. The registration check and the slot release
// happen under the registry lock; the callback runs after it is released.
func (r *ConsumerRegistry) deliver(ctx context.Context, session *LoadSession, result vo.DecodeResult, onComplete func(vo.DecodeResult)) {
	defer session.finish()

	consumerID := session.request.ConsumerID

	r.mu.Lock()
	current, ok := r.sessions[consumerID]
	if !ok || current != session || session.Cancelled() {
		r.mu.Unlock()
		r.recordDropped(ctx, session)
		return
	}
	delete(r.sessions, consumerID)
	active := len(r.sessions)
	r.mu.Unlock()

	r.metrics.SetActiveSessions(active)
	if result.OK() {
		r.metrics.SessionCompleted(metrics.OutcomeDelivered)
	} else {
		r.metrics.SessionCompleted(metrics.OutcomeFailed)
	}

	if onComplete != nil {
		onComplete(result)
	}
}

func (r *ConsumerRegistry) discard(ctx context.Context, session *LoadSession) {
	r.recordDropped(ctx, session)
	session.finish()
}

func (r *ConsumerRegistry) recordDropped(ctx context.Context, session *LoadSession) {
	r.metrics.SessionCompleted(metrics.OutcomeSuperseded)
	r.logger.DebugContext(ctx, "session result dropped",
		"session_id", session.id,
		"consumer_id", session.request.ConsumerID,
		"state", session.State().String(),
	)
}

func validateRequest(req domain.ResourceRequest) error {
	if strings.TrimSpace(req.ConsumerID) == "" {
		return errors.New("consumer id is required")
	}

	raw := strings.TrimSpace(req.URL)
	if raw == "" {
		return errors.New("url is required")
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("url is not parseable: %w", err)
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("unsupported url scheme %q", parsed.Scheme)
	}

	if parsed.Host == "" {
		return errors.New("url has no host")
	}

	return nil
}
