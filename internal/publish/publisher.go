package publish

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Publisher serves the latest Documents and rebuilds them on a schedule.
// Readers never block on a rebuild.
type Publisher struct {
	builder *Builder
	logger  *zap.Logger
	current atomic.Pointer[Documents]

	mu   sync.Mutex
	cron *cron.Cron
}

// NewPublisher creates a Publisher. Call Refresh or Start to populate it.
func NewPublisher(builder *Builder, logger *zap.Logger) *Publisher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Publisher{builder: builder, logger: logger}
}

// Documents returns the current snapshot, building one on first use.
func (p *Publisher) Documents() (*Documents, error) {
	if docs := p.current.Load(); docs != nil {
		return docs, nil
	}
	if err := p.Refresh(); err != nil {
		return nil, err
	}
	return p.current.Load(), nil
}

// Refresh rebuilds the documents and swaps them in. On failure the previous
// snapshot stays in place.
func (p *Publisher) Refresh() error {
	docs, err := p.builder.Build()
	if err != nil {
		p.logger.Error("failed to rebuild published documents",
			zap.String("op", "publish.Refresh"),
			zap.Error(err),
		)
		return err
	}
	p.current.Store(docs)

	p.logger.Debug("published documents rebuilt",
		zap.String("op", "publish.Refresh"),
		zap.Time("builtAt", docs.BuiltAt),
		zap.Int("sitemapBytes", len(docs.Sitemap)),
	)
	return nil
}

// Start builds the documents immediately and then on the given cron
// schedule. An empty schedule builds once without scheduling.
func (p *Publisher) Start(schedule string) error {
	if err := p.Refresh(); err != nil {
		return err
	}
	if schedule == "" {
		return nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cron != nil {
		return fmt.Errorf("publisher already started")
	}

	c := cron.New()
	if _, err := c.AddFunc(schedule, func() { _ = p.Refresh() }); err != nil {
		return fmt.Errorf("failed to schedule document refresh %q: %w", schedule, err)
	}
	c.Start()
	p.cron = c

	p.logger.Info("document refresh scheduled",
		zap.String("op", "publish.Start"),
		zap.String("schedule", schedule),
	)
	return nil
}

// Stop halts scheduled rebuilds and waits for a running rebuild to finish.
func (p *Publisher) Stop() {
	p.mu.Lock()
	c := p.cron
	p.cron = nil
	p.mu.Unlock()

	if c == nil {
		return
	}
	<-c.Stop().Done()
	p.logger.Info("document refresh stopped", zap.String("op", "publish.Stop"))
}
