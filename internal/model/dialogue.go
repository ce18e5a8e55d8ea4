package model

// Role identifies who produced a dialogue turn.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleTool      Role = "tool"
	RoleFunction  Role = "function"
)

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleSystem, RoleUser, RoleAssistant, RoleTool, RoleFunction:
		return true
	}
	return false
}

// DialogueTurn is a single message of a conversation. Turns are never edited
// after they are appended to a session's dialogue.
type DialogueTurn struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}
