package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

const (
	readableFileTag = "readable_file"
	aboveFloorTag   = "above_floor"
)

// configValidator reports configuration errors in English, naming fields by their YAML keys.
type configValidator struct {
	validate   *validator.Validate
	translator ut.Translator
}

func newConfigValidator() (*configValidator, error) {
	validate := validator.New()

	english := en.New()
	translator, _ := ut.New(english, english).GetTranslator("en")
	if err := enTranslations.RegisterDefaultTranslations(validate, translator); err != nil {
		return nil, fmt.Errorf("enTranslations.RegisterDefaultTranslations() > %w", err)
	}

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("mapstructure"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	if err := validate.RegisterValidation(readableFileTag, isReadableFile); err != nil {
		return nil, fmt.Errorf("validate.RegisterValidation(%s) > %w", readableFileTag, err)
	}
	validate.RegisterStructValidation(validateInitialWeight, QuizConfig{})

	for tag, message := range map[string]string{
		readableFileTag: "{0} must be an existing and readable file",
		aboveFloorTag:   "{0} must not be below quiz.policy.floor ({1})",
	} {
		if err := validate.RegisterTranslation(tag, translator, registerMessage(tag, message), translateWithKey); err != nil {
			return nil, fmt.Errorf("validate.RegisterTranslation(%s) > %w", tag, err)
		}
	}

	return &configValidator{validate: validate, translator: translator}, nil
}

// Validate returns every violation of cfg joined into one error.
func (v *configValidator) Validate(cfg Config) error {
	err := v.validate.Struct(cfg)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("validator.Struct() > %w", err)
	}
	messages := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		messages = append(messages, fe.Translate(v.translator))
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(messages, ", "))
}

func registerMessage(tag, message string) validator.RegisterTranslationsFunc {
	return func(trans ut.Translator) error {
		return trans.Add(tag, message, true)
	}
}

// translateWithKey names the field by its full YAML key, such as templates.study_sheet_template.
func translateWithKey(trans ut.Translator, fe validator.FieldError) string {
	key := strings.TrimPrefix(fe.Namespace(), "Config.")
	params := []string{key}
	if fe.Param() != "" {
		params = append(params, fe.Param())
	}
	message, err := trans.T(fe.Tag(), params...)
	if err != nil {
		return fe.Error()
	}
	return message
}

// validateInitialWeight keeps new words from starting below the weight floor.
func validateInitialWeight(sl validator.StructLevel) {
	quiz := sl.Current().Interface().(QuizConfig)
	if quiz.InitialWeight < quiz.Policy.Floor {
		sl.ReportError(quiz.InitialWeight, "initial_weight", "InitialWeight", aboveFloorTag,
			strconv.FormatFloat(quiz.Policy.Floor, 'g', -1, 64))
	}
}

func isReadableFile(fl validator.FieldLevel) bool {
	info, err := os.Stat(fl.Field().String())
	if err != nil || info.IsDir() {
		return false
	}
	file, err := os.Open(fl.Field().String())
	if err != nil {
		return false
	}
	_ = file.Close()
	return true
}
