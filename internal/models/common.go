// internal/models/common.go
package models

// Enums
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageChinese Language = "zh"
)

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Toggle returns the other theme value.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

type Investment string

const (
	InvestmentLow    Investment = "Low"
	InvestmentMedium Investment = "Medium"
	InvestmentHigh   Investment = "High"
)

type TurnRole string

const (
	TurnRoleUser      TurnRole = "user"
	TurnRoleAssistant TurnRole = "assistant"
)

// Categories offered by the course publish form.
const (
	CategoryNewsletter = "Newsletter"
	CategoryCourse     = "Course"
	CategoryEBook      = "E-Book"
	CategoryCommunity  = "Community"
)

func CourseCategories() []string {
	return []string{CategoryNewsletter, CategoryCourse, CategoryEBook, CategoryCommunity}
}
