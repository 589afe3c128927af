// Package notify keeps the stack of user-facing notifications. Each one is
// independent and disappears on its own after its duration unless sticky.
package notify

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"resume-builder/pkg/logger"
)

type Kind string

const (
	Success Kind = "success"
	Error   Kind = "error"
	Info    Kind = "info"
)

func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case Success, Error, Info:
		return Kind(s), nil
	case "":
		return Info, nil
	}
	return "", fmt.Errorf("unknown notification kind %q", s)
}

const DefaultDuration = 3 * time.Second

type Notification struct {
	ID        string        `json:"id"`
	Message   string        `json:"message"`
	Kind      Kind          `json:"kind"`
	Duration  time.Duration `json:"duration"`
	CreatedAt time.Time     `json:"created_at"`
}

// Notifier is the fire-and-forget side used by producers.
type Notifier interface {
	Notify(message string, kind Kind, d time.Duration) Notification
}

type Center struct {
	log logger.Logger
	now func() time.Time

	mu     sync.Mutex
	items  []Notification
	timers map[string]*time.Timer
}

func NewCenter(log logger.Logger) *Center {
	if log == nil {
		log = logger.NewNop()
	}
	return &Center{log: log, now: time.Now, timers: make(map[string]*time.Timer)}
}

// Notify pushes a notification. A zero duration makes it sticky.
func (c *Center) Notify(message string, kind Kind, d time.Duration) Notification {
	n := Notification{
		ID:        uuid.NewString(),
		Message:   message,
		Kind:      kind,
		Duration:  d,
		CreatedAt: c.now(),
	}

	c.mu.Lock()
	c.items = append(c.items, n)
	if d > 0 {
		c.timers[n.ID] = time.AfterFunc(d, func() { c.Dismiss(n.ID) })
	}
	c.mu.Unlock()

	c.log.Info("notify: "+message, zap.String("id", n.ID), zap.String("kind", string(kind)), zap.Duration("duration", d))
	return n
}

// Active returns the visible notifications, oldest first.
func (c *Center) Active() []Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Notification, len(c.items))
	copy(out, c.items)
	return out
}

// Dismiss removes a notification; it reports false when the id is unknown.
func (c *Center) Dismiss(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if t, ok := c.timers[id]; ok {
		t.Stop()
		delete(c.timers, id)
	}
	for i, n := range c.items {
		if n.ID == id {
			c.items = append(c.items[:i:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}

// Close stops all pending timers.
func (c *Center) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for id, t := range c.timers {
		t.Stop()
		delete(c.timers, id)
	}
}
