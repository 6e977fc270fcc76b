package entity

// AdminUser is the single fixed admin identity sourced from configuration.
// It is derived, never persisted independently.
type AdminUser struct {
	ID           string
	Email        string
	PasswordHash string
	Role         string
}
