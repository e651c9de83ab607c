package transcript

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/gradientm/gradientm-chat/internal/model/chat"
)

// timeFormat renders local time the way the widget displays it, e.g. "10:05 AM".
const timeFormat = "03:04 PM"

// Store holds the process-wide conversation history. A fresh store
// contains a single assistant greeting and grows without bound until an
// explicit Reset; nothing is persisted across restarts.
type Store struct {
	mu    sync.RWMutex
	turns []chat.Turn
	now   func() time.Time
}

// NewStore bootstraps an in-memory transcript seeded with the greeting.
func NewStore() *Store {
	s := &Store{now: time.Now}
	s.turns = []chat.Turn{s.greeting()}
	return s
}

// Append adds a turn to the end of the transcript. Missing ID and
// timestamp fields are filled in at insertion time. The stored turn is
// returned.
func (s *Store) Append(turn chat.Turn) chat.Turn {
	if turn.ID == "" {
		turn.ID = uuid.NewString()
	}
	if turn.Timestamp == "" {
		turn.Timestamp = s.now().Format(timeFormat)
	}

	s.mu.Lock()
	s.turns = append(s.turns, turn)
	s.mu.Unlock()

	return turn
}

// Snapshot returns a copy of the full ordered transcript.
func (s *Store) Snapshot() []chat.Turn {
	s.mu.RLock()
	defer s.mu.RUnlock()

	copied := make([]chat.Turn, len(s.turns))
	copy(copied, s.turns)
	return copied
}

// Reset replaces the transcript with a single fresh greeting turn.
func (s *Store) Reset() {
	greeting := s.greeting()

	s.mu.Lock()
	s.turns = []chat.Turn{greeting}
	s.mu.Unlock()
}

// Len reports the current number of turns.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.turns)
}

func (s *Store) greeting() chat.Turn {
	return chat.Turn{
		ID:        uuid.NewString(),
		Role:      chat.RoleAssistant,
		Content:   chat.Greeting,
		Timestamp: s.now().Format(timeFormat),
	}
}
