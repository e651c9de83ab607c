package chat

// Roles a turn can carry. The transcript only ever stores these two;
// they match the roles the completion service expects verbatim.
const (
	RoleAssistant = "assistant"
	RoleUser      = "user"
)

// Greeting seeds every fresh transcript.
const Greeting = "Hello! How can I assist you today?"

// Turn is one message unit in the conversation.
type Turn struct {
	ID        string `json:"id"`
	Role      string `json:"role"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
}
