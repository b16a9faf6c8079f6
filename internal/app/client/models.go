package client

// User is the client-held copy of the authenticated user. Token is the
// opaque session token issued by the server; the whole struct is what
// gets persisted as the device session.
type User struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Email     string   `json:"email"`
	Favorites []string `json:"favorites"`
	Token     string   `json:"token"`
}

// Valid reports whether the record can act as a session: a session
// always carries a user id and a non-empty token.
func (u *User) Valid() bool {
	return u != nil && u.ID != "" && u.Token != ""
}
