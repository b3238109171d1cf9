package service

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/ticoship/rate-service/internal/domain/model"
	"github.com/ticoship/rate-service/internal/repository"
)

// AuditService records request and quote audit entries without blocking
// the request path. Entries are dropped when the buffer is full.
type AuditService interface {
	LogRequest(entry *model.RequestLog) bool
	LogQuote(entry *model.QuoteLog) bool
	Stop()
}

// AuditConfig holds configuration for the async audit writer.
type AuditConfig struct {
	// BufferSize is the size of the entry channel buffer.
	BufferSize int
	// NumWorkers is the number of worker goroutines writing entries.
	NumWorkers int
	// WriteTimeout is the timeout for writing one entry to the database.
	WriteTimeout time.Duration
}

// DefaultAuditConfig returns sensible defaults for the audit writer.
func DefaultAuditConfig() AuditConfig {
	return AuditConfig{
		BufferSize:   1000,
		NumWorkers:   4,
		WriteTimeout: 5 * time.Second,
	}
}

// AsyncAuditService implements AuditService with a bounded worker pool,
// so bursts of traffic never spawn a goroutine per request.
type AsyncAuditService struct {
	repo         repository.AuditRepositoryInterface
	entryCh      chan any
	stopCh       chan struct{}
	stopOnce     sync.Once
	wg           sync.WaitGroup
	writeTimeout time.Duration

	enqueued int64
	dropped  int64
	written  int64
	errors   int64
}

// NewAuditService creates the async audit writer and starts its workers.
// A nil repository yields a nil service; callers treat nil as disabled.
func NewAuditService(repo repository.AuditRepositoryInterface, cfg AuditConfig) *AsyncAuditService {
	if repo == nil {
		return nil
	}

	s := &AsyncAuditService{
		repo:         repo,
		entryCh:      make(chan any, cfg.BufferSize),
		stopCh:       make(chan struct{}),
		writeTimeout: cfg.WriteTimeout,
	}

	for i := 0; i < cfg.NumWorkers; i++ {
		s.wg.Add(1)
		go s.worker()
	}

	return s
}

func (s *AsyncAuditService) worker() {
	defer s.wg.Done()

	for {
		select {
		case entry, ok := <-s.entryCh:
			if !ok {
				return
			}
			s.writeEntry(entry)
		case <-s.stopCh:
			// Drain remaining entries before stopping.
			for {
				select {
				case entry := <-s.entryCh:
					s.writeEntry(entry)
				default:
					return
				}
			}
		}
	}
}

func (s *AsyncAuditService) writeEntry(entry any) {
	ctx, cancel := context.WithTimeout(context.Background(), s.writeTimeout)
	defer cancel()

	var err error
	switch e := entry.(type) {
	case *model.RequestLog:
		err = s.repo.InsertRequestLog(ctx, e)
	case *model.QuoteLog:
		err = s.repo.InsertQuoteLog(ctx, e)
	default:
		return
	}

	if err != nil {
		atomic.AddInt64(&s.errors, 1)
		log.Warn().Err(err).Msg("Failed to write audit entry")
		return
	}
	atomic.AddInt64(&s.written, 1)
}

func (s *AsyncAuditService) enqueue(entry any) bool {
	select {
	case s.entryCh <- entry:
		atomic.AddInt64(&s.enqueued, 1)
		return true
	default:
		atomic.AddInt64(&s.dropped, 1)
		return false
	}
}

// LogRequest enqueues an HTTP request log entry.
func (s *AsyncAuditService) LogRequest(entry *model.RequestLog) bool {
	return s.enqueue(entry)
}

// LogQuote enqueues a quote computation record.
func (s *AsyncAuditService) LogQuote(entry *model.QuoteLog) bool {
	return s.enqueue(entry)
}

// Stop shuts the workers down, draining buffered entries first.
func (s *AsyncAuditService) Stop() {
	s.stopOnce.Do(func() {
		close(s.stopCh)
	})
	s.wg.Wait()
}

// Stats reports the writer's lifetime counters.
func (s *AsyncAuditService) Stats() (enqueued, dropped, written, errs int64) {
	return atomic.LoadInt64(&s.enqueued),
		atomic.LoadInt64(&s.dropped),
		atomic.LoadInt64(&s.written),
		atomic.LoadInt64(&s.errors)
}
