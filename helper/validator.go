package helper

import (
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"gopkg.in/go-playground/validator.v9"
	en_translations "gopkg.in/go-playground/validator.v9/translations/en"

	"blog-article-api/models"
)

// Validator wraps the field validator together with its message translator.
type Validator struct {
	Validate   *validator.Validate
	Translator ut.Translator
}

func NewValidator() *Validator {
	locale := en.New()
	uni := ut.New(locale, locale)
	trans, _ := uni.GetTranslator("en")

	validate := validator.New()
	_ = en_translations.RegisterDefaultTranslations(validate, trans)

	return &Validator{Validate: validate, Translator: trans}
}

// ValidateStruct runs full field validation and collects every violation
// into a single ValidationError.
func (v *Validator) ValidateStruct(s interface{}) error {
	err := v.Validate.Struct(s)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return models.NewValidationError(err.Error())
	}

	translated := validationErrors.Translate(v.Translator)
	messages := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		messages = append(messages, translated[fieldErr.Namespace()])
	}

	return models.NewValidationError(messages...)
}
