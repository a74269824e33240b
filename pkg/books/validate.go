package books

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/agentstation/bookshelf/pkg/constants"
	pkgerrors "github.com/agentstation/bookshelf/pkg/errors"
)

// Rules are the catalog-level validation settings.
type Rules struct {
	// MinYear is the earliest accepted publication year.
	MinYear int
	// FreeTextGenres accepts genres outside the enumerated set.
	FreeTextGenres bool
	// Now supplies the current time; the latest accepted year is Now().Year().
	Now func() time.Time
}

// DefaultRules returns the rules used when none are configured.
func DefaultRules() Rules {
	return Rules{
		MinYear: constants.MinPublicationYear,
		Now:     time.Now,
	}
}

// MaxYear returns the latest accepted publication year.
func (r Rules) MaxYear() int {
	if r.Now == nil {
		return time.Now().Year()
	}
	return r.Now().Year()
}

// Validator checks drafts against Rules using go-playground/validator.
type Validator struct {
	v     *validator.Validate
	rules Rules
}

// NewValidator creates a validator for the given rules.
func NewValidator(rules Rules) *Validator {
	if rules.MinYear == 0 {
		rules.MinYear = constants.MinPublicationYear
	}
	if rules.Now == nil {
		rules.Now = time.Now
	}

	v := validator.New(validator.WithRequiredStructEnabled())

	// Report JSON names so errors match the file format.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	val := &Validator{v: v, rules: rules}

	// Registration only fails for empty tags or nil funcs.
	_ = v.RegisterValidation("pubyear", func(fl validator.FieldLevel) bool {
		year := int(fl.Field().Int())
		return year >= val.rules.MinYear && year <= val.rules.MaxYear()
	})
	_ = v.RegisterValidation("genre", func(fl validator.FieldLevel) bool {
		_, ok := CanonicalGenre(fl.Field().String(), val.rules.FreeTextGenres)
		return ok
	})

	return val
}

// Rules returns the rules this validator enforces.
func (v *Validator) Rules() Rules {
	return v.rules
}

// Validate normalises nb and checks it. On success the returned draft has
// trimmed text and a canonical genre.
func (v *Validator) Validate(nb NewBook) (NewBook, error) {
	nb = nb.Normalize()
	if err := v.v.Struct(nb); err != nil {
		return nb, v.formatError(err)
	}
	nb.Genre, _ = CanonicalGenre(nb.Genre, v.rules.FreeTextGenres)
	return nb, nil
}

// formatError converts the first field failure into a ValidationError.
func (v *Validator) formatError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return pkgerrors.WrapValidation("", err)
	}
	e := validationErrs[0]
	return pkgerrors.NewValidationError(e.Field(), e.Value(), v.friendlyMessage(e))
}

func (v *Validator) friendlyMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "max":
		return fmt.Sprintf("must not exceed %s characters", e.Param())
	case "pubyear":
		return fmt.Sprintf("must be between %d and %d", v.rules.MinYear, v.rules.MaxYear())
	case "genre":
		names := make([]string, len(genres))
		for i, g := range genres {
			names[i] = string(g)
		}
		return "must be one of: " + strings.Join(names, ", ")
	default:
		return "is invalid"
	}
}
