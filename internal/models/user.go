// internal/models/user.go
package models

type User struct {
	Name   string    `json:"name"`
	Avatar string    `json:"avatar"`
	Bio    string    `json:"bio"`
	Role   string    `json:"role"`
	Stats  UserStats `json:"stats"`
}

type UserStats struct {
	TotalEarnings float64 `json:"total_earnings"`
	CoursesSold   int     `json:"courses_sold"`
	CommunityRank string  `json:"community_rank"`
}

// UserPatch is a partial profile update. Nil fields are left untouched;
// stats are never patched through the profile flow.
type UserPatch struct {
	Name   *string `json:"name,omitempty"`
	Avatar *string `json:"avatar,omitempty"`
	Bio    *string `json:"bio,omitempty"`
	Role   *string `json:"role,omitempty"`
}

// Apply merges the patch into a copy of u and returns it.
func (p UserPatch) Apply(u User) User {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Avatar != nil {
		u.Avatar = *p.Avatar
	}
	if p.Bio != nil {
		u.Bio = *p.Bio
	}
	if p.Role != nil {
		u.Role = *p.Role
	}
	return u
}

// IsEmpty reports whether the patch would change nothing.
func (p UserPatch) IsEmpty() bool {
	return p.Name == nil && p.Avatar == nil && p.Bio == nil && p.Role == nil
}
