package schema

// BoardUserTable represents the 'users' table
type BoardUserTable struct {
	Table     string
	Username  string
	Name      string
	AvatarURL string
}

// BoardUser is the schema definition for users
var BoardUser = BoardUserTable{
	Table:     "users",
	Username:  "username",
	Name:      "name",
	AvatarURL: "avatar_url",
}

func (t BoardUserTable) Columns() []string {
	return []string{t.Username, t.Name, t.AvatarURL}
}
