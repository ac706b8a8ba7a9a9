package domain

// User is a reference entity shared across boards and cards. Users are not
// owned by any board; cards and board member lists point at them by ID.
type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar,omitempty"`
}
