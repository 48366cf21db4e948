// internal/utils/validator.go
package utils

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("course_category", validateCourseCategory)
	validate.RegisterValidation("difficulty", validateDifficulty)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// validateCourseCategory keeps publishes inside the fixed option set
// the marketplace form offers.
func validateCourseCategory(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "Newsletter", "Course", "E-Book", "Community":
		return true
	}
	return false
}

func validateDifficulty(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "Easy", "Medium", "Hard":
		return true
	}
	return false
}

type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

func GetValidationErrors(err error) []ValidationError {
	var validationErrors []ValidationError

	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrs {
			validationErrors = append(validationErrors, ValidationError{
				Field:   strings.ToLower(e.Field()),
				Tag:     e.Tag(),
				Message: getValidationMessage(e),
			})
		}
	}

	return validationErrors
}

func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "course_category":
		return "Category must be one of Newsletter, Course, E-Book, Community"
	case "difficulty":
		return "Difficulty must be one of Easy, Medium, Hard"
	default:
		return e.Field() + " is invalid"
	}
}
