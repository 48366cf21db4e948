package state

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wealthflow/wealthflow-backend/internal/models"
)

func newTestShell(opts ...Option) *Shell {
	user := models.User{Name: "Alex", Role: "Founder", Avatar: "a.png"}
	courses := []models.Course{
		{ID: "c1", Title: "First", Category: models.CategoryCourse},
		{ID: "c2", Title: "Second", Category: models.CategoryEBook},
	}
	posts := []models.Post{
		{ID: "p1", Author: "Mia", Likes: 10},
		{ID: "p2", Author: "Leo", Likes: 3, IsLiked: true},
	}
	return NewShell(user, courses, posts, opts...)
}

func TestNavigateClearsSelections(t *testing.T) {
	s := newTestShell()

	course, ok := s.CourseByID("c1")
	require.True(t, ok)
	s.OpenCourseDetail(course)

	snap := s.Snapshot()
	require.Equal(t, ViewCourseDetail, snap.View)
	require.NotNil(t, snap.Course)

	for _, v := range []View{ViewDashboard, ViewMarketplace, ViewIdeas, ViewCommunity, ViewProfile, ViewAICoach} {
		s.OpenCourseDetail(course)
		require.True(t, s.Navigate(v))

		snap := s.Snapshot()
		assert.Equal(t, v, snap.View)
		assert.Nil(t, snap.Course, "selection must be cleared by %s", v)
		assert.Nil(t, snap.Idea)
	}
}

func TestNavigateRejectsUnknownView(t *testing.T) {
	s := newTestShell()
	assert.False(t, s.Navigate(View("SETTINGS")))
	assert.Equal(t, ViewDashboard, s.Snapshot().View)
}

func TestDetailWithoutSelectionRendersList(t *testing.T) {
	s := newTestShell()

	course, _ := s.CourseByID("c1")
	s.OpenCourseDetail(course)
	require.True(t, s.Navigate(ViewMarketplace))

	// Entering the detail view again without a fresh selection must
	// degrade to the list view, with the stored view untouched.
	require.True(t, s.Navigate(ViewCourseDetail))

	snap := s.Snapshot()
	assert.Equal(t, ViewCourseDetail, snap.View)
	assert.Equal(t, ViewMarketplace, snap.ResolvedView)
	assert.Nil(t, snap.Course)
}

func TestSelectionsAreMutuallyExclusive(t *testing.T) {
	s := newTestShell()

	course, _ := s.CourseByID("c1")
	s.OpenCourseDetail(course)
	s.OpenIdeaDetail(models.Idea{ID: "i1", Title: "Idea"})

	snap := s.Snapshot()
	assert.Nil(t, snap.Course)
	require.NotNil(t, snap.Idea)
	assert.Equal(t, ViewIdeaDetail, snap.View)
	assert.Equal(t, ViewIdeaDetail, snap.ResolvedView)
}

func TestAddCoursePrependsAndNavigates(t *testing.T) {
	s := newTestShell()

	s.AddCourse(models.Course{ID: "c3", Title: "Newest"})

	courses := s.Courses()
	require.Len(t, courses, 3)
	assert.Equal(t, "c3", courses[0].ID)
	assert.Equal(t, "c1", courses[1].ID)
	assert.Equal(t, ViewMarketplace, s.Snapshot().View)
}

func TestAddPostPrepends(t *testing.T) {
	s := newTestShell()

	s.AddPost(models.Post{ID: "p3", Author: "Alex"})

	posts := s.Posts()
	require.Len(t, posts, 3)
	assert.Equal(t, "p3", posts[0].ID)
}

func TestToggleLikePairsAreIdempotent(t *testing.T) {
	s := newTestShell()

	before := s.Posts()

	for _, id := range []string{"p1", "p2"} {
		_, ok := s.ToggleLike(id)
		require.True(t, ok)
		_, ok = s.ToggleLike(id)
		require.True(t, ok)
	}

	after := s.Posts()
	require.Len(t, after, len(before))
	for i := range before {
		assert.Equal(t, before[i].Likes, after[i].Likes)
		assert.Equal(t, before[i].IsLiked, after[i].IsLiked)
	}
}

func TestToggleLikeDirection(t *testing.T) {
	s := newTestShell()

	post, ok := s.ToggleLike("p1")
	require.True(t, ok)
	assert.Equal(t, 11, post.Likes)
	assert.True(t, post.IsLiked)

	post, ok = s.ToggleLike("p2") // seeded as already liked
	require.True(t, ok)
	assert.Equal(t, 2, post.Likes)
	assert.False(t, post.IsLiked)
}

func TestToggleLikeUnknownIDIsNoop(t *testing.T) {
	s := newTestShell()

	before := s.Posts()
	_, ok := s.ToggleLike("missing")
	assert.False(t, ok)
	assert.Equal(t, before, s.Posts())
}

func TestUpdateUserShallowMerge(t *testing.T) {
	s := newTestShell()

	bio := "New bio"
	updated := s.UpdateUser(models.UserPatch{Bio: &bio})

	assert.Equal(t, "New bio", updated.Bio)
	assert.Equal(t, "Alex", updated.Name, "unpatched fields survive")
	assert.Equal(t, "a.png", updated.Avatar)
}

func TestToggleTheme(t *testing.T) {
	s := newTestShell()

	assert.Equal(t, models.ThemeDark, s.ToggleTheme())
	assert.Equal(t, models.ThemeLight, s.ToggleTheme())
}

func TestSetLanguage(t *testing.T) {
	s := newTestShell()

	assert.True(t, s.SetLanguage(models.LanguageEnglish))
	assert.Equal(t, models.LanguageEnglish, s.Language())
	assert.False(t, s.SetLanguage(models.Language("fr")))
	assert.Equal(t, models.LanguageEnglish, s.Language())
}

func TestToastReplacesAndAutoDismisses(t *testing.T) {
	s := newTestShell(WithToastTTL(30 * time.Millisecond))

	s.ShowToast("first")
	s.ShowToast("second")

	toast := s.Toast()
	require.NotNil(t, toast)
	assert.Equal(t, "second", toast.Message, "a new toast replaces, never queues")

	assert.Eventually(t, func() bool {
		return s.Toast() == nil
	}, time.Second, 5*time.Millisecond)
}

func TestToastTimerDoesNotDismissNewerToast(t *testing.T) {
	s := newTestShell(WithToastTTL(30 * time.Millisecond))

	s.ShowToast("first")
	time.Sleep(15 * time.Millisecond)
	s.ShowToast("second")
	time.Sleep(25 * time.Millisecond)

	// The first toast's timer has fired by now, but the second is
	// still inside its own lifetime.
	toast := s.Toast()
	require.NotNil(t, toast)
	assert.Equal(t, "second", toast.Message)
}

func TestDismissToast(t *testing.T) {
	s := newTestShell()

	s.ShowToast("message")
	s.DismissToast()
	assert.Nil(t, s.Toast())
}
