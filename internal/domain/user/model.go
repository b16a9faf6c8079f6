package user

import (
	"time"

	"github.com/google/uuid"
)

// User is the system-of-record identity. Password holds the bcrypt hash
// and never leaves the server.
type User struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Password  string
	Favorites []string
	CreatedAt time.Time
}
