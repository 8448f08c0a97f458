package domain

// AdminUsername is the distinguished account that always holds the administrator role.
const AdminUsername = "admin"

// Role is the visibility level derived from an identity.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleClient    Role = "client"
	RoleAnonymous Role = "anonymous"
)

// User models a registered account of the venue.
type User struct {
	Username      string `json:"username"`
	Password      string `json:"-"`
	Name          string `json:"name"`
	Establishment string `json:"establishment"`
}

// RoleOf derives the role of an authenticated user. A nil user is anonymous.
func RoleOf(u *User) Role {
	switch {
	case u == nil:
		return RoleAnonymous
	case u.Username == AdminUsername:
		return RoleAdmin
	default:
		return RoleClient
	}
}

// Viewer identifies who is asking for a role-scoped projection.
type Viewer struct {
	Username string
	Role     Role
}

// ViewerOf builds the Viewer for u.
func ViewerOf(u *User) Viewer {
	if u == nil {
		return Viewer{Role: RoleAnonymous}
	}
	return Viewer{Username: u.Username, Role: RoleOf(u)}
}

// Sees reports whether the viewer is allowed to see a reservation owned by owner.
func (v Viewer) Sees(owner string) bool {
	switch v.Role {
	case RoleAdmin:
		return true
	case RoleClient:
		return v.Username != "" && v.Username == owner
	default:
		return false
	}
}
