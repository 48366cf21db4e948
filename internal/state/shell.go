// internal/state/shell.go
package state

import (
	"sync"
	"time"

	"github.com/wealthflow/wealthflow-backend/internal/models"
)

// DefaultToastTTL is how long a toast stays visible before it
// self-dismisses.
const DefaultToastTTL = 3 * time.Second

// Toast is a transient user-feedback message. At most one toast is
// live; a new one replaces (never queues behind) the current one.
type Toast struct {
	Message string `json:"message"`
}

// Shell is the application's single state container. It exclusively
// owns the navigation state, the selection, the user, the course and
// post collections, and the toast. All transitions take the one mutex
// and run to completion, so invariants only need to hold at method
// boundaries. Nothing else in the process may write this state.
type Shell struct {
	mu sync.Mutex

	view      View
	selection Selection
	language  models.Language
	theme     models.Theme

	user    models.User
	courses []models.Course
	posts   []models.Post

	toast      *Toast
	toastEpoch int
	toastTTL   time.Duration
}

// Option configures a Shell at construction time.
type Option func(*Shell)

// WithToastTTL overrides the toast auto-dismiss duration.
func WithToastTTL(d time.Duration) Option {
	return func(s *Shell) { s.toastTTL = d }
}

// WithLanguage sets the initial display language.
func WithLanguage(lang models.Language) Option {
	return func(s *Shell) { s.language = lang }
}

// NewShell builds a Shell starting on the dashboard with the given
// seed data. The slices are copied; callers keep no write handle.
func NewShell(user models.User, courses []models.Course, posts []models.Post, opts ...Option) *Shell {
	s := &Shell{
		view:     ViewDashboard,
		language: models.LanguageChinese,
		theme:    models.ThemeLight,
		user:     user,
		courses:  append([]models.Course(nil), courses...),
		posts:    append([]models.Post(nil), posts...),
		toastTTL: DefaultToastTTL,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Snapshot is the read-only state slice handed across the rendering
// boundary.
type Snapshot struct {
	View         View            `json:"view"`
	ResolvedView View            `json:"resolved_view"`
	Language     models.Language `json:"language"`
	Theme        models.Theme    `json:"theme"`
	Course       *models.Course  `json:"selected_course,omitempty"`
	Idea         *models.Idea    `json:"selected_idea,omitempty"`
	Toast        *Toast          `json:"toast,omitempty"`
}

// Snapshot returns the current navigation state with the defensive
// detail-to-list resolution already applied.
func (s *Shell) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		View:         s.view,
		ResolvedView: Resolve(s.view, s.selection),
		Language:     s.language,
		Theme:        s.theme,
	}
	if s.selection.Course != nil {
		c := *s.selection.Course
		snap.Course = &c
	}
	if s.selection.Idea != nil {
		i := *s.selection.Idea
		snap.Idea = &i
	}
	if s.toast != nil {
		t := *s.toast
		snap.Toast = &t
	}
	return snap
}

// Navigate sets the active view. Navigating to any non-detail view
// clears both selections; generic navigation never sets a selection,
// only OpenCourseDetail and OpenIdeaDetail do.
func (s *Shell) Navigate(target View) bool {
	if !target.Valid() {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view = target
	if !target.IsDetail() {
		s.selection = Selection{}
	}
	return true
}

// OpenCourseDetail selects the course and enters its detail view.
func (s *Shell) OpenCourseDetail(course models.Course) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection = Selection{Course: &course}
	s.view = ViewCourseDetail
}

// OpenIdeaDetail selects the idea and enters its detail view.
func (s *Shell) OpenIdeaDetail(idea models.Idea) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection = Selection{Idea: &idea}
	s.view = ViewIdeaDetail
}

// User returns a copy of the current user.
func (s *Shell) User() models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// UpdateUser shallow-merges the patch into the user and returns the
// result. Stats are untouched; the user is never replaced wholesale.
func (s *Shell) UpdateUser(patch models.UserPatch) models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = patch.Apply(s.user)
	return s.user
}

// Courses returns a copy of the course collection, newest first.
func (s *Shell) Courses() []models.Course {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Course(nil), s.courses...)
}

// CourseByID looks a course up by id.
func (s *Shell) CourseByID(id string) (models.Course, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.courses {
		if c.ID == id {
			return c, true
		}
	}
	return models.Course{}, false
}

// AddCourse prepends the course and moves the session to the
// marketplace, in one transition. Courses are never mutated, deleted,
// or reordered after this.
func (s *Shell) AddCourse(course models.Course) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.courses = append([]models.Course{course}, s.courses...)
	s.view = ViewMarketplace
	s.selection = Selection{}
}

// Posts returns a copy of the post collection, newest first.
func (s *Shell) Posts() []models.Post {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Post(nil), s.posts...)
}

// AddPost prepends the post.
func (s *Shell) AddPost(post models.Post) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.posts = append([]models.Post{post}, s.posts...)
}

// ToggleLike flips the liked flag on the post with the given id and
// adjusts the like count by one in the matching direction. Paired
// toggles restore the original count. An unknown id is a no-op.
func (s *Shell) ToggleLike(id string) (models.Post, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.posts {
		if s.posts[i].ID != id {
			continue
		}
		if s.posts[i].IsLiked {
			s.posts[i].Likes--
		} else {
			s.posts[i].Likes++
		}
		s.posts[i].IsLiked = !s.posts[i].IsLiked
		return s.posts[i], true
	}
	return models.Post{}, false
}

// Language returns the active display language.
func (s *Shell) Language() models.Language {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.language
}

// SetLanguage swaps the display language. Language is presentation
// state only; no domain data changes with it.
func (s *Shell) SetLanguage(lang models.Language) bool {
	if lang != models.LanguageEnglish && lang != models.LanguageChinese {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.language = lang
	return true
}

// Theme returns the active theme.
func (s *Shell) Theme() models.Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.theme
}

// ToggleTheme flips between light and dark and returns the new value.
func (s *Shell) ToggleTheme() models.Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.theme = s.theme.Toggle()
	return s.theme
}

// ShowToast replaces the live toast and arms its auto-dismiss timer.
// The epoch guard keeps an earlier toast's timer from dismissing a
// newer toast.
func (s *Shell) ShowToast(message string) {
	s.mu.Lock()
	s.toastEpoch++
	epoch := s.toastEpoch
	s.toast = &Toast{Message: message}
	ttl := s.toastTTL
	s.mu.Unlock()

	time.AfterFunc(ttl, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.toastEpoch == epoch {
			s.toast = nil
		}
	})
}

// Toast returns the live toast, or nil.
func (s *Shell) Toast() *Toast {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.toast == nil {
		return nil
	}
	t := *s.toast
	return &t
}

// DismissToast clears the toast immediately.
func (s *Shell) DismissToast() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.toastEpoch++
	s.toast = nil
}
