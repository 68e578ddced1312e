package domain

import "time"

type Role string

const (
	RoleUser     Role = "user"
	RoleProvider Role = "provider"
	RoleAdmin    Role = "admin"
)

// Caller: аутентифицированный пользователь запроса.
type Caller struct {
	ID   string
	Role Role
}

func (c Caller) IsAdmin() bool {
	return c.Role == RoleAdmin
}

type User struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	TelegramChatID *int64    `json:"telegram_chat_id"`
	CreatedAt      time.Time `json:"created_at"`
}
