// internal/state/view.go
package state

import "github.com/wealthflow/wealthflow-backend/internal/models"

// View is one named screen of the application. Exactly one view is
// active at a time.
type View string

const (
	ViewDashboard    View = "DASHBOARD"
	ViewMarketplace  View = "MARKETPLACE"
	ViewIdeas        View = "IDEAS"
	ViewCommunity    View = "COMMUNITY"
	ViewProfile      View = "PROFILE"
	ViewAICoach      View = "AI_COACH"
	ViewCourseDetail View = "COURSE_DETAIL"
	ViewIdeaDetail   View = "IDEA_DETAIL"
)

// listFallback maps each detail view to the list view it degrades to
// when its selection is absent. Views not present in the table are
// list views and never require a selection.
var listFallback = map[View]View{
	ViewCourseDetail: ViewMarketplace,
	ViewIdeaDetail:   ViewIdeas,
}

var allViews = map[View]bool{
	ViewDashboard:    true,
	ViewMarketplace:  true,
	ViewIdeas:        true,
	ViewCommunity:    true,
	ViewProfile:      true,
	ViewAICoach:      true,
	ViewCourseDetail: true,
	ViewIdeaDetail:   true,
}

// Valid reports whether v is a member of the view enumeration.
func (v View) Valid() bool {
	return allViews[v]
}

// IsDetail reports whether v requires a selected entity to render.
func (v View) IsDetail() bool {
	_, ok := listFallback[v]
	return ok
}

// Selection is the entity currently shown in a detail view. At most
// one field is non-nil, and only while the matching detail view is
// active.
type Selection struct {
	Course *models.Course
	Idea   *models.Idea
}

// IsZero reports whether nothing is selected.
func (s Selection) IsZero() bool {
	return s.Course == nil && s.Idea == nil
}

// satisfies reports whether the selection carries the entity the view
// needs to render.
func (s Selection) satisfies(v View) bool {
	switch v {
	case ViewCourseDetail:
		return s.Course != nil
	case ViewIdeaDetail:
		return s.Idea != nil
	default:
		return true
	}
}

// Resolve is the total rendering function over (view, selection)
// pairs: a detail view whose selection is absent resolves to its list
// fallback instead of failing. The stored view is left untouched by
// resolution; only the rendered screen degrades.
func Resolve(v View, sel Selection) View {
	if !v.Valid() {
		return ViewDashboard
	}
	if !sel.satisfies(v) {
		return listFallback[v]
	}
	return v
}
