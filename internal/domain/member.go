package domain

// Member represents one user's participation in a room under a display
// name. The name is fixed for the member's lifetime; a rejoin under the
// same name produces a fresh Member bound to the new connection.
// No transport or lifecycle logic here.
type Member struct {
	User *User
	Name string
}

// NewMember avoids raw literals in adapters and keeps construction obvious.
func NewMember(user *User, name string) *Member {
	return &Member{User: user, Name: name}
}
