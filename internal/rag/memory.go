package rag

import (
	"fmt"
	"sync"

	"letterqa/internal/models"

	"github.com/google/uuid"
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Memory keeps ordered conversation turns per session. Turns live only for
// the session: cleared explicitly or discarded when the process exits. It is
// bookkeeping for callers that want follow-up context, not an input to
// retrieval.
type Memory struct {
	mu       sync.Mutex
	sessions map[string][]models.ConversationTurn
}

func NewMemory() *Memory {
	return &Memory{sessions: make(map[string][]models.ConversationTurn)}
}

func (m *Memory) NewSession() string {
	id := uuid.NewString()
	m.mu.Lock()
	m.sessions[id] = nil
	m.mu.Unlock()
	return id
}

func (m *Memory) Append(sessionID, role, content string) error {
	if role != RoleUser && role != RoleAssistant {
		return fmt.Errorf("invalid conversation role %q", role)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[sessionID] = append(m.sessions[sessionID], models.ConversationTurn{Role: role, Content: content})
	return nil
}

func (m *Memory) Turns(sessionID string) []models.ConversationTurn {
	m.mu.Lock()
	defer m.mu.Unlock()
	turns := m.sessions[sessionID]
	out := make([]models.ConversationTurn, len(turns))
	copy(out, turns)
	return out
}

func (m *Memory) Clear(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, sessionID)
}
