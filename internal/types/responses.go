package types

// UserResponse is the only user shape ever serialized to clients. Password
// material never leaves the models package through any response path.
type UserResponse struct {
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar,omitempty"`
	Role   string `json:"role,omitempty"`
}
