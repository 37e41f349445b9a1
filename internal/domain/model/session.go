package model

import (
	"time"
)

type Role string

const (
	RoleUser Role = "user"
	RoleBot  Role = "bot"
)

// Turn is one entry in the bounded conversation history.
type Turn struct {
	Role      Role
	Text      string
	Timestamp time.Time
}

// HistoryLimit caps the turn history; the oldest entry is evicted first.
const HistoryLimit = 200

// Session is the aggregate for one conversation. It holds no lock of its own:
// the engine serializes every mutation behind a single mutex per session.
type Session struct {
	ID          string
	Username    string
	LastEmotion Category // empty until an emotion category matched
	ActiveGame  *GameInstance
	History     []Turn
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewSession(id, username string) *Session {
	now := time.Now()
	return &Session{
		ID:        id,
		Username:  username,
		History:   make([]Turn, 0, 16),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// PushTurn appends to the history, evicting the oldest turn past HistoryLimit.
func (s *Session) PushTurn(role Role, text string, at time.Time) {
	s.History = append(s.History, Turn{Role: role, Text: text, Timestamp: at})
	if len(s.History) > HistoryLimit {
		s.History = s.History[1:]
	}
	s.UpdatedAt = at
}

// GameSnapshot mirrors GameInstance for snapshots.
type GameSnapshot struct {
	ID     GameID `json:"id"`
	Name   string `json:"name"`
	Prompt string `json:"prompt"`
	Answer string `json:"answer,omitempty"`
}

// SessionSnapshot is an immutable deep copy of a Session, safe to hand out
// while the engine keeps mutating the original.
type SessionSnapshot struct {
	ID          string        `json:"id"`
	Username    string        `json:"username"`
	LastEmotion Category      `json:"last_emotion,omitempty"`
	ActiveGame  *GameSnapshot `json:"active_game,omitempty"`
	History     []Turn        `json:"history"`
}

func (s *Session) Snapshot() SessionSnapshot {
	snap := SessionSnapshot{
		ID:          s.ID,
		Username:    s.Username,
		LastEmotion: s.LastEmotion,
		History:     make([]Turn, len(s.History)),
	}
	copy(snap.History, s.History)
	if s.ActiveGame != nil {
		snap.ActiveGame = &GameSnapshot{
			ID:     s.ActiveGame.Def.ID,
			Name:   s.ActiveGame.Def.Name,
			Prompt: s.ActiveGame.Def.Prompt,
			Answer: s.ActiveGame.Answer,
		}
	}
	return snap
}
