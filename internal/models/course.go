// internal/models/course.go
package models

type Course struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Author          string   `json:"author"`
	Price           float64  `json:"price"`
	CommissionRate  float64  `json:"commission_rate"` // percentage, e.g. 20 for 20%
	Sales           int      `json:"sales"`
	Category        string   `json:"category"`
	Rating          float64  `json:"rating"`
	ImageURL        string   `json:"image_url"`
	Description     string   `json:"description"`
	FullDescription string   `json:"full_description,omitempty"`
	Features        []string `json:"features,omitempty"`
	TargetAudience  []string `json:"target_audience,omitempty"`
	IsUserCreated   bool     `json:"is_user_created,omitempty"`
}
