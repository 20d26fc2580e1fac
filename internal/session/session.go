// Package session holds the in-memory client state shared between the
// command loop and the incoming-message path. Nothing here is persisted;
// a fresh process starts with code mode off and no active chat.
package session

import (
	"sync"

	"github.com/rg/tgcli/internal/decor"
	"github.com/rg/tgcli/internal/messaging"
)

// State is the mutable client state. Command handlers write it; the
// incoming-message callback and the prompt renderer only read it, so a
// RWMutex is enough.
type State struct {
	mu sync.RWMutex

	codeMode  bool
	cloakMode bool
	language  decor.Language
	target    *messaging.Peer
}

func New() *State {
	return &State{
		language: decor.DefaultLanguage,
	}
}

// Snapshot is a consistent read of the fields the send and render paths
// need together.
type Snapshot struct {
	CodeMode  bool
	CloakMode bool
	Language  decor.Language
	Target    *messaging.Peer
}

func (s *State) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		CodeMode:  s.codeMode,
		CloakMode: s.cloakMode,
		Language:  s.language,
		Target:    s.target,
	}
}

// ToggleCodeMode flips code mode and returns the new value.
func (s *State) ToggleCodeMode() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.codeMode = !s.codeMode
	return s.codeMode
}

// ToggleCloakMode flips cloak mode and returns the new value.
func (s *State) ToggleCloakMode() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cloakMode = !s.cloakMode
	return s.cloakMode
}

func (s *State) SetLanguage(lang decor.Language) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.language = lang
}

func (s *State) Language() decor.Language {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.language
}

func (s *State) SetTarget(peer *messaging.Peer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.target = peer
}

// ClearTarget unsets the active chat. Clearing an already-unset target
// is a no-op.
func (s *State) ClearTarget() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.target = nil
}

// Target returns the active chat peer, or nil when none is selected.
func (s *State) Target() *messaging.Peer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.target
}
