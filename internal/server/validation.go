package server

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"connectrpc.com/connect"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
)

type requestValidator struct {
	validate *validator.Validate
	trans    ut.Translator
}

var defaultValidator = mustNewRequestValidator()

func mustNewRequestValidator() *requestValidator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	enLocale := en.New()
	trans, _ := ut.New(enLocale, enLocale).GetTranslator("en")
	if err := enTranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		panic(fmt.Sprintf("failed to register default translations: %v", err))
	}
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &requestValidator{validate: validate, trans: trans}
}

// validateRequest checks the validate tags of a message.
// Violations are reported as a BadRequest detail with one entry per field.
func validateRequest(msg any) *connect.Error {
	err := defaultValidator.validate.Struct(msg)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return connect.NewError(connect.CodeInvalidArgument, err)
	}

	messages := make([]string, 0, len(validationErrors))
	fieldViolations := make([]*errdetails.BadRequest_FieldViolation, 0, len(validationErrors))
	for _, fe := range validationErrors {
		description := fe.Translate(defaultValidator.trans)
		messages = append(messages, description)
		fieldViolations = append(fieldViolations, &errdetails.BadRequest_FieldViolation{
			Field:       fieldPath(fe),
			Description: description,
		})
	}

	connectErr := connect.NewError(connect.CodeInvalidArgument, errors.New(strings.Join(messages, "; ")))
	if detail, detailErr := connect.NewErrorDetail(&errdetails.BadRequest{
		FieldViolations: fieldViolations,
	}); detailErr == nil {
		connectErr.AddDetail(detail)
	}
	return connectErr
}

// fieldPath drops the struct name from a namespace like "GetHintRequest.revealed[0]".
func fieldPath(fe validator.FieldError) string {
	namespace := fe.Namespace()
	if i := strings.Index(namespace, "."); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

func newInvalidArgumentError(field, description string) *connect.Error {
	connectErr := connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("%s: %s", field, description))
	if detail, detailErr := connect.NewErrorDetail(&errdetails.BadRequest{
		FieldViolations: []*errdetails.BadRequest_FieldViolation{
			{Field: field, Description: description},
		},
	}); detailErr == nil {
		connectErr.AddDetail(detail)
	}
	return connectErr
}
