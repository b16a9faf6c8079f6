package user

type registerInput struct {
	Body RegisterRequest
}

type RegisterRequest struct {
	Name     string `json:"name" doc:"Display name"`
	Email    string `json:"email" format:"email" doc:"Unique email address"`
	Password string `json:"password" doc:"Plaintext password, hashed server-side"`
}

type loginInput struct {
	Body LoginRequest
}

type LoginRequest struct {
	Email    string `json:"email" format:"email"`
	Password string `json:"password"`
}

type authOutput struct {
	Body AuthResponse
}

// AuthResponse is the logged-in user payload the client persists as its
// session, token included.
type AuthResponse struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Email     string   `json:"email"`
	Favorites []string `json:"favorites"`
	Token     string   `json:"token"`
}

type profileInput struct{}

type profileOutput struct {
	Body ProfileResponse
}

type ProfileResponse struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Email     string   `json:"email"`
	Favorites []string `json:"favorites"`
}
