package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"

	chatmodel "github.com/gradientm/gradientm-chat/internal/model/chat"
	"github.com/gradientm/gradientm-chat/internal/service/sanitize"
	"github.com/gradientm/gradientm-chat/internal/service/transcript"
)

// ErrEmptyQuestion flags input that is empty after trimming. Callers
// treat it as a no-op rather than a failure.
var ErrEmptyQuestion = errors.New("question is empty")

// Message is one {role, content} pair sent to the completion service.
// Timestamps never leave the transcript.
type Message struct {
	Role    string
	Content string
}

// Client performs one grounded chat completion over the full message
// history and returns the first candidate's text.
type Client interface {
	Complete(ctx context.Context, messages []Message) (string, error)
}

// Service executes conversation turns: it appends the user question,
// queries the completion client with the whole transcript, and stores
// the sanitized reply.
type Service struct {
	store  *transcript.Store
	client Client
}

// NewService wires the executor to its transcript store and completion client.
func NewService(store *transcript.Store, client Client) *Service {
	return &Service{store: store, client: client}
}

// Ask runs one conversation turn and returns the sanitized assistant
// reply. Empty input after trimming returns ErrEmptyQuestion without
// touching the transcript or the external service. A failed or empty
// completion leaves the user turn in place and is not retried.
func (s *Service) Ask(ctx context.Context, question string) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", ErrEmptyQuestion
	}

	s.store.Append(chatmodel.Turn{Role: chatmodel.RoleUser, Content: question})

	turns := s.store.Snapshot()
	messages := make([]Message, 0, len(turns))
	for _, turn := range turns {
		messages = append(messages, Message{Role: turn.Role, Content: turn.Content})
	}

	reply, err := s.client.Complete(ctx, messages)
	if err != nil {
		return "", fmt.Errorf("completion request failed: %w", err)
	}

	cleaned := sanitize.Clean(reply)
	s.store.Append(chatmodel.Turn{Role: chatmodel.RoleAssistant, Content: cleaned})

	return cleaned, nil
}
