package transcript_test

import (
	"testing"

	"github.com/gradientm/gradientm-chat/internal/model/chat"
	"github.com/gradientm/gradientm-chat/internal/service/transcript"
)

func TestNewStoreSeedsGreeting(t *testing.T) {
	store := transcript.NewStore()

	turns := store.Snapshot()
	if len(turns) != 1 {
		t.Fatalf("expected 1 seeded turn, got %d", len(turns))
	}
	if turns[0].Role != chat.RoleAssistant {
		t.Fatalf("unexpected role: got %s", turns[0].Role)
	}
	if turns[0].Content != chat.Greeting {
		t.Fatalf("unexpected greeting: got %q", turns[0].Content)
	}
	if turns[0].Timestamp == "" {
		t.Fatal("expected seeded turn to carry a timestamp")
	}
}

func TestAppendPreservesOrder(t *testing.T) {
	store := transcript.NewStore()

	store.Append(chat.Turn{Role: chat.RoleUser, Content: "first"})
	store.Append(chat.Turn{Role: chat.RoleAssistant, Content: "second"})

	turns := store.Snapshot()
	if len(turns) != 3 {
		t.Fatalf("expected 3 turns, got %d", len(turns))
	}
	if turns[1].Content != "first" || turns[2].Content != "second" {
		t.Fatalf("turns out of order: %q, %q", turns[1].Content, turns[2].Content)
	}
}

func TestAppendFillsIDAndTimestamp(t *testing.T) {
	store := transcript.NewStore()

	stored := store.Append(chat.Turn{Role: chat.RoleUser, Content: "hi"})
	if stored.ID == "" {
		t.Fatal("expected generated ID")
	}
	if stored.Timestamp == "" {
		t.Fatal("expected generated timestamp")
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	store := transcript.NewStore()
	store.Append(chat.Turn{Role: chat.RoleUser, Content: "hi"})

	turns := store.Snapshot()
	turns[0].Content = "mutated"

	if store.Snapshot()[0].Content != chat.Greeting {
		t.Fatal("snapshot mutation leaked into the store")
	}
}

func TestResetRestoresSingleGreeting(t *testing.T) {
	store := transcript.NewStore()
	store.Append(chat.Turn{Role: chat.RoleUser, Content: "hi"})
	store.Append(chat.Turn{Role: chat.RoleAssistant, Content: "hello"})

	store.Reset()

	turns := store.Snapshot()
	if len(turns) != 1 {
		t.Fatalf("expected 1 turn after reset, got %d", len(turns))
	}
	if turns[0].Role != chat.RoleAssistant || turns[0].Content != chat.Greeting {
		t.Fatalf("unexpected turn after reset: %+v", turns[0])
	}
}
