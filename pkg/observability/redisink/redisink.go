// Package redisink publishes help events to a Redis pub/sub channel.
//
// Each event is a small JSON document. Nothing is stored: subscribers that
// are not listening when an event is published never see it.
//
// Hooks only enqueue. A single goroutine publishes in order, each PUBLISH
// bounded by a timeout, so a slow or unreachable Redis never stalls the
// program drawing the help items. When the queue is full new events are
// dropped with a warning.
//
//	sink, err := redisink.New(ctx, redisink.Config{Addr: "localhost:6379"})
//	if err != nil {
//	    return err
//	}
//	defer sink.Close()
//	observability.SetHelpHooks(sink)
package redisink

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"

	"github.com/matzehuels/dynhelp/pkg/observability"
)

// DefaultChannel is used when Config.Channel is empty.
const DefaultChannel = "dynhelp:events"

const (
	queueSize      = 256
	publishTimeout = 2 * time.Second
)

// Config configures the Redis connection.
type Config struct {
	Addr     string
	Password string
	DB       int
	Channel  string
	Logger   *log.Logger
}

// Event is the JSON payload published for every hook call.
type Event struct {
	Kind    string    `json:"kind"`
	Flow    string    `json:"flow,omitempty"`
	Item    string    `json:"item,omitempty"`
	Target  string    `json:"target,omitempty"`
	Enabled *bool     `json:"enabled,omitempty"`
	At      time.Time `json:"at"`
}

// Publisher is the subset of the Redis client the sink needs.
type Publisher interface {
	Publish(ctx context.Context, channel string, message any) *redis.IntCmd
}

// Sink implements observability.HelpHooks on top of Redis PUBLISH.
type Sink struct {
	client  Publisher
	closer  func() error
	channel string
	logger  *log.Logger
	now     func() time.Time
	timeout time.Duration

	mu     sync.Mutex
	closed bool
	queue  chan queued
	done   chan struct{}
}

type queued struct {
	ctx context.Context
	ev  Event
}

// New connects to Redis and verifies the connection with PING.
func New(ctx context.Context, cfg Config) (*Sink, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", cfg.Addr, err)
	}
	s := NewWithClient(client, cfg.Channel, cfg.Logger)
	s.closer = client.Close
	return s, nil
}

// NewWithClient wraps an existing publisher and starts the publishing
// goroutine. Close stops it.
func NewWithClient(p Publisher, channel string, logger *log.Logger) *Sink {
	if channel == "" {
		channel = DefaultChannel
	}
	s := &Sink{
		client:  p,
		closer:  func() error { return nil },
		channel: channel,
		logger:  observability.Logger(logger),
		now:     time.Now,
		timeout: publishTimeout,
		queue:   make(chan queued, queueSize),
		done:    make(chan struct{}),
	}
	go s.run()
	return s
}

// Close publishes what is still queued, then releases the underlying
// connection if the sink owns it. Events arriving after Close are dropped.
func (s *Sink) Close() error {
	s.mu.Lock()
	if !s.closed {
		s.closed = true
		close(s.queue)
	}
	s.mu.Unlock()
	<-s.done
	return s.closer()
}

func (s *Sink) run() {
	defer close(s.done)
	for q := range s.queue {
		s.send(q.ctx, q.ev)
	}
}

func (s *Sink) enqueue(ctx context.Context, ev Event) {
	ev.At = s.now().UTC()
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	select {
	case s.queue <- queued{ctx: context.WithoutCancel(ctx), ev: ev}:
	default:
		s.logger.Warn("event queue full, dropping event", "kind", ev.Kind)
	}
}

func (s *Sink) send(ctx context.Context, ev Event) {
	payload, err := json.Marshal(ev)
	if err != nil {
		s.logger.Warn("encode event", "kind", ev.Kind, "err", err)
		return
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	if err := s.client.Publish(ctx, s.channel, payload).Err(); err != nil {
		s.logger.Warn("publish event", "channel", s.channel, "kind", ev.Kind, "err", err)
	}
}

func (s *Sink) OnItemShown(ctx context.Context, flowID, itemID, targetID string) {
	s.enqueue(ctx, Event{Kind: "item_shown", Flow: flowID, Item: itemID, Target: targetID})
}

func (s *Sink) OnItemHidden(ctx context.Context, flowID, itemID string) {
	s.enqueue(ctx, Event{Kind: "item_hidden", Flow: flowID, Item: itemID})
}

func (s *Sink) OnFlowEnabled(ctx context.Context, flowID string, enabled bool) {
	s.enqueue(ctx, Event{Kind: "flow_enabled", Flow: flowID, Enabled: &enabled})
}

func (s *Sink) OnHelpEnabled(ctx context.Context, enabled bool) {
	s.enqueue(ctx, Event{Kind: "help_enabled", Enabled: &enabled})
}

var _ observability.HelpHooks = (*Sink)(nil)
