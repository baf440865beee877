package domain

// Role is a flat label; no hierarchy is enforced between roles.
type Role string

const (
	RoleAdmin Role = "Admin"
	RoleOwner Role = "Owner"
)

// AdminProfile is a privileged account with a public-facing bio.
// Password is plaintext; an empty password never authenticates.
type AdminProfile struct {
	ID       string   `json:"id" yaml:"id"`
	Username string   `json:"username" yaml:"username"`
	Name     string   `json:"name" yaml:"name"`
	Role     Role     `json:"role" yaml:"role"`
	Quote    string   `json:"quote" yaml:"quote"`
	Hashtags []string `json:"hashtags" yaml:"hashtags"`
	PhotoURL string   `json:"photoUrl" yaml:"photoUrl"`
	Password string   `json:"password,omitempty" yaml:"password"`
}

// PublicProfile is what visitors get to see of an admin.
type PublicProfile struct {
	ID       string   `json:"id"`
	Username string   `json:"username"`
	Name     string   `json:"name"`
	Role     Role     `json:"role"`
	Quote    string   `json:"quote"`
	Hashtags []string `json:"hashtags"`
	PhotoURL string   `json:"photoUrl"`
}

func (a AdminProfile) Public() PublicProfile {
	tags := make([]string, len(a.Hashtags))
	copy(tags, a.Hashtags)
	return PublicProfile{
		ID:       a.ID,
		Username: a.Username,
		Name:     a.Name,
		Role:     a.Role,
		Quote:    a.Quote,
		Hashtags: tags,
		PhotoURL: a.PhotoURL,
	}
}

// Clone returns a copy that shares no slices with a.
func (a AdminProfile) Clone() AdminProfile {
	out := a
	out.Hashtags = make([]string, len(a.Hashtags))
	copy(out.Hashtags, a.Hashtags)
	return out
}

// ProfileUpdate is the profile form of the admin console. Hashtags is the
// raw free-text field as typed.
type ProfileUpdate struct {
	Name     string
	Quote    string
	Hashtags string
	PhotoURL string
}
