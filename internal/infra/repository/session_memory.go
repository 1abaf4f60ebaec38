package repository

import (
	"context"
	"sync"
	"time"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"
)

// SessionMemoryRepository はセッション状態のインメモリ実装。
// 永続化しない（リロードで消える仕様）。
type SessionMemoryRepository struct {
	mu       sync.RWMutex
	sessions map[string]model.Session
}

func NewSessionMemoryRepository() *SessionMemoryRepository {
	return &SessionMemoryRepository{
		sessions: make(map[string]model.Session),
	}
}

func (r *SessionMemoryRepository) Create(ctx context.Context, id string) (model.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	s := model.Session{
		ID:              id,
		CartItems:       []model.CartItem{},
		StepperQuantity: 1,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	r.sessions[id] = s

	return cloneSession(s), nil
}

func (r *SessionMemoryRepository) FindByID(ctx context.Context, id string) (model.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[id]
	if !ok {
		return model.Session{}, repo.ErrNotFound
	}
	return cloneSession(s), nil
}

func (r *SessionMemoryRepository) Save(ctx context.Context, s model.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[s.ID]; !ok {
		return repo.ErrNotFound
	}

	s.UpdatedAt = time.Now()
	r.sessions[s.ID] = cloneSession(s)
	return nil
}

// 呼び出し側のスライス・ポインタと共有しないためのコピー。
func cloneSession(s model.Session) model.Session {
	items := make([]model.CartItem, len(s.CartItems))
	copy(items, s.CartItems)
	s.CartItems = items

	if s.Selected != nil {
		p := *s.Selected
		s.Selected = &p
	}
	return s
}
