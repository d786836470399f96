package user

// User is a registered board member. Users are read-only through this API.
type User struct {
	Username  string  `json:"username"`
	Name      string  `json:"name"`
	AvatarURL *string `json:"avatar_url"`
}
