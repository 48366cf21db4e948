// internal/models/post.go
package models

type Post struct {
	ID           string   `json:"id"`
	Author       string   `json:"author"`
	AuthorRole   string   `json:"author_role"` // e.g. "Founder", "Freelancer"
	AuthorAvatar string   `json:"author_avatar,omitempty"`
	Content      string   `json:"content"`
	Likes        int      `json:"likes"`
	IsLiked      bool     `json:"is_liked"`
	Comments     int      `json:"comments"`
	Timestamp    string   `json:"timestamp"`
	Tags         []string `json:"tags"`
}
