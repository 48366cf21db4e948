// internal/i18n/keys.go
package i18n

// Translation keys constants
const (
	// Common
	KeySuccess = "success"
	KeyError   = "error"

	// Validation
	KeyValidationInvalid  = "validation.invalid"
	KeyValidationRequired = "validation.required"

	// Profile
	KeyProfileSaved    = "profile.saved"
	KeyProfileNotFound = "profile.not_found"

	// Courses / Marketplace
	KeyCoursePublished = "course.published"
	KeyCourseNotFound  = "course.not_found"
	KeyLinkCopied      = "course.link_copied"

	// Community
	KeyPostPublished = "post.published"
	KeyPostNotFound  = "post.not_found"

	// Ideas
	KeyIdeaNotFound       = "idea.not_found"
	KeyIdeaGeneratorBusy  = "idea.generator_busy"
	KeyIdeaGenerateFailed = "idea.generate_failed"

	// AI Coach
	KeyCoachIntro    = "coach.intro"
	KeyCoachFallback = "coach.fallback"
	KeyCoachBusy     = "coach.busy"

	// Rate limiting
	KeyRateLimited = "rate.limited"
)
