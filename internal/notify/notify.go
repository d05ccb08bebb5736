package notify

import "sync"

// Level classifies a notification.
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
)

// Notification is one user-facing message produced by a store operation.
type Notification struct {
	Level   Level  `json:"level"`
	Message string `json:"message"`
}

// Notifier receives user-facing messages from the stores.
type Notifier interface {
	Success(msg string)
	Error(msg string)
	Info(msg string)
	Warning(msg string)
}

const defaultCapacity = 64

// Feed is a bounded in-memory notification queue. When full, the oldest
// entries are dropped.
type Feed struct {
	mu       sync.Mutex
	items    []Notification
	capacity int
}

// NewFeed creates a feed holding at most capacity pending notifications.
func NewFeed(capacity int) *Feed {
	if capacity <= 0 {
		capacity = defaultCapacity
	}
	return &Feed{capacity: capacity}
}

func (f *Feed) push(level Level, msg string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.items) >= f.capacity {
		f.items = f.items[1:]
	}
	f.items = append(f.items, Notification{Level: level, Message: msg})
}

func (f *Feed) Success(msg string) { f.push(LevelSuccess, msg) }
func (f *Feed) Error(msg string)   { f.push(LevelError, msg) }
func (f *Feed) Info(msg string)    { f.push(LevelInfo, msg) }
func (f *Feed) Warning(msg string) { f.push(LevelWarning, msg) }

// Drain returns all pending notifications and clears the feed.
func (f *Feed) Drain() []Notification {
	f.mu.Lock()
	defer f.mu.Unlock()
	items := f.items
	f.items = nil
	if items == nil {
		return []Notification{}
	}
	return items
}
