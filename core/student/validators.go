package student

import (
	"fmt"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/studentmarks/core"
)

var (
	codeTag  = "studentcode"
	codeText = fmt.Sprintf("student code must be between %d and %d", MinCode, MaxCode)

	courseworkTag  = "coursework"
	courseworkText = fmt.Sprintf("coursework marks must be between 0 and %d", MaxCoursework)

	examTag  = "exammark"
	examText = fmt.Sprintf("exam mark must be between 0 and %d", MaxExam)

	codeExistsText = "student code already exists"
)

// InitValidators registers the student validators and their translations.
// core.InitValidators must have been called on `validate` first.
func InitValidators(validate *validator.Validate, translator ut.Translator) {
	_ = validate.RegisterValidation(codeTag, intRange(MinCode, MaxCode))
	core.RegisterCustomTranslation(validate, translator, codeTag, codeText)

	_ = validate.RegisterValidation(courseworkTag, intRange(0, MaxCoursework))
	core.RegisterCustomTranslation(validate, translator, courseworkTag, courseworkText)

	_ = validate.RegisterValidation(examTag, intRange(0, MaxExam))
	core.RegisterCustomTranslation(validate, translator, examTag, examText)
}

// NewValidator returns a validator ready to check NewStudent and UpdateStudent.
func NewValidator() (*validator.Validate, ut.Translator) {
	validate, translator := core.NewValidator()
	InitValidators(validate, translator)
	return validate, translator
}

// Custom Validators

func intRange(min, max int64) validator.Func {
	return func(fl validator.FieldLevel) bool {
		n := fl.Field().Int()
		return n >= min && n <= max
	}
}
