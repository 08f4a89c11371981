package catalog

import (
	errs "Arcadia/errors"
	"Arcadia/models/postgres"
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	// closed value sets: Role, GameState, PaymentMethod, EventType, Platform
	v.RegisterValidation("enum", func(fl validator.FieldLevel) bool {
		e, ok := fl.Field().Interface().(interface{ Valid() bool })
		return ok && e.Valid()
	})
	return v
}

// check validates in and returns the first failure as a Validation error.
func (s *Service) check(in any) error {
	err := s.validate.Struct(in)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		if fe.Param() != "" {
			return errs.Validation(fe.Field(), "failed %s=%s (got %v)", fe.Tag(), fe.Param(), fe.Value())
		}
		return errs.Validation(fe.Field(), "failed %s (got %v)", fe.Tag(), fe.Value())
	}
	return errs.Validation("input", "%v", err)
}

func checkMoney(field string, d *decimal.Decimal) error {
	if d == nil {
		return nil
	}
	return postgres.CheckMoney(field, *d)
}

func trimPtr(p *string) {
	if p != nil {
		*p = strings.TrimSpace(*p)
	}
}
