package notify

import (
	"sync"
	"time"
)

type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// ユーザー向けの短い通知（トースト相当）。
type Notification struct {
	Level     Level     `json:"level"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// Notifier は状態変更から通知を切り離すための口。
// fire-and-forget（応答契約なし）。usecaseは表示方法を知らない。
type Notifier interface {
	Success(sessionID string, message string)
	Error(sessionID string, message string)
}

// セッションごとの保留分をDrainで読み出すまで保持
const maxPerSession = 50

// Feed はインメモリの通知キュー。読み出しで消える。
type Feed struct {
	mu        sync.Mutex
	bySession map[string][]Notification
}

func NewFeed() *Feed {
	return &Feed{bySession: make(map[string][]Notification)}
}

func (f *Feed) Success(sessionID string, message string) {
	f.push(sessionID, LevelSuccess, message)
}

func (f *Feed) Error(sessionID string, message string) {
	f.push(sessionID, LevelError, message)
}

// Drain は保留中の通知を古い順で返してキューを空にする。
func (f *Feed) Drain(sessionID string) []Notification {
	f.mu.Lock()
	defer f.mu.Unlock()

	items := f.bySession[sessionID]
	delete(f.bySession, sessionID)

	if items == nil {
		return []Notification{}
	}
	return items
}

func (f *Feed) push(sessionID string, level Level, message string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	items := append(f.bySession[sessionID], Notification{
		Level:     level,
		Message:   message,
		CreatedAt: time.Now(),
	})

	// 読み出されないまま溜まった分は古い方から捨てる
	if len(items) > maxPerSession {
		items = items[len(items)-maxPerSession:]
	}
	f.bySession[sessionID] = items
}
