package constant

const (
	ChatMessageRoleUser      = "user"
	ChatMessageRoleAssistant = "assistant"
	ChatMessageRoleSystem    = "system"

	// DefaultSessionTitle is used until the first user message names the
	// session.
	DefaultSessionTitle = "New conversation"

	// AssistantGreeting opens every fresh session.
	AssistantGreeting = "Hey! I can recommend spots around town, help you plan something, or call a restaurant to book a table. What are you in the mood for?"
)
