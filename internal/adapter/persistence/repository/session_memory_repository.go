package repository

import (
	"context"
	"errors"
	"sync"

	"disena_service/internal/domain/entities"
	"disena_service/internal/usecase/interfaces"
)

var ErrSessionAlreadyExists = errors.New("session already exists")

// SessionMemoryRepository keeps sessions in process memory. Used for
// local runs and tests; it honors the same conventions as the DynamoDB
// repository (zero-ID session when not found).
type SessionMemoryRepository struct {
	mu       sync.RWMutex
	sessions map[string]entities.DesignSession
}

var _ interfaces.ISessionRepository = (*SessionMemoryRepository)(nil)

func NewSessionMemoryRepository() *SessionMemoryRepository {
	return &SessionMemoryRepository{sessions: map[string]entities.DesignSession{}}
}

func (r *SessionMemoryRepository) Create(_ context.Context, s entities.DesignSession) (entities.DesignSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[s.ID]; ok {
		return entities.DesignSession{}, ErrSessionAlreadyExists
	}
	r.sessions[s.ID] = s
	return s, nil
}

func (r *SessionMemoryRepository) GetByID(_ context.Context, id string) (entities.DesignSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	if !ok {
		return entities.DesignSession{}, nil
	}
	return s, nil
}

func (r *SessionMemoryRepository) Update(_ context.Context, s entities.DesignSession) (entities.DesignSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[s.ID]; !ok {
		return entities.DesignSession{}, errors.New("session not found")
	}
	r.sessions[s.ID] = s
	return s, nil
}
