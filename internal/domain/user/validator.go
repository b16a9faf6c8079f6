package user

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

type Validator struct {
	validate *validator.Validate
}

type registerFields struct {
	Name     string `validate:"required,min=2,max=64"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=8,max=72"`
}

type loginFields struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

func NewValidator() *Validator {
	return &Validator{validate: validator.New()}
}

func (v *Validator) ValidateRegister(name, email, password string) error {
	fields := registerFields{Name: name, Email: email, Password: password}
	if err := v.validate.Struct(fields); err != nil {
		return describe(err)
	}
	return nil
}

func (v *Validator) ValidateLogin(email, password string) error {
	fields := loginFields{Email: email, Password: password}
	if err := v.validate.Struct(fields); err != nil {
		return describe(err)
	}
	return nil
}

// describe turns the first field error into a message suitable for the
// API response.
func describe(err error) error {
	errs, ok := err.(validator.ValidationErrors)
	if !ok || len(errs) == 0 {
		return err
	}

	fe := errs[0]
	switch fe.Tag() {
	case "required":
		return fmt.Errorf("%s is required", fieldName(fe.Field()))
	case "email":
		return fmt.Errorf("email must be a valid address")
	case "min":
		return fmt.Errorf("%s must be at least %s characters", fieldName(fe.Field()), fe.Param())
	case "max":
		return fmt.Errorf("%s must be at most %s characters", fieldName(fe.Field()), fe.Param())
	default:
		return fmt.Errorf("%s is invalid", fieldName(fe.Field()))
	}
}

func fieldName(structField string) string {
	switch structField {
	case "Name":
		return "name"
	case "Email":
		return "email"
	case "Password":
		return "password"
	default:
		return structField
	}
}
