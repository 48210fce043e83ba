// Package validation checks form input before anything reaches the network.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var (
	validate *validator.Validate
	once     sync.Once

	gmailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@gmail\.com$`)
	namePattern  = regexp.MustCompile(`^[a-zA-Z ]+$`)

	// now is swapped in tests of the date-of-birth rule.
	now = time.Now
)

// MinAge is the youngest customer allowed to register.
const MinAge = 13

// GetValidator returns the shared validator with the custom rules registered.
func GetValidator() *validator.Validate {
	once.Do(initValidator)
	return validate
}

func initValidator() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	mustRegister("gmail", func(fl validator.FieldLevel) bool {
		return gmailPattern.MatchString(fl.Field().String())
	})
	mustRegister("letters", func(fl validator.FieldLevel) bool {
		return namePattern.MatchString(fl.Field().String())
	})
	mustRegister("digits", func(fl validator.FieldLevel) bool {
		return isDigits(fl.Field().String())
	})
	mustRegister("password", func(fl validator.FieldLevel) bool {
		return PasswordProblem(fl.Field().String()) == ""
	})
	mustRegister("dob", func(fl validator.FieldLevel) bool {
		return DOBProblem(fl.Field().String()) == ""
	})
}

func mustRegister(tag string, fn validator.Func) {
	if err := validate.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register %s: %v", tag, err))
	}
}

// FieldErrors maps a form field to the message shown next to it.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	keys := make([]string, 0, len(fe))
	for k := range fe {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+fe[k])
	}
	return "invalid input: " + strings.Join(parts, "; ")
}

// Field returns the message for one field, or "".
func (fe FieldErrors) Field(name string) string { return fe[name] }

// AsFieldErrors extracts FieldErrors from err.
func AsFieldErrors(err error) (FieldErrors, bool) {
	var fe FieldErrors
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}

// Struct validates a form and returns FieldErrors keyed by JSON field name.
// Only the first failing rule of each field is reported.
func Struct(form any) error {
	err := GetValidator().Struct(form)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fe := make(FieldErrors, len(verrs))
	for _, e := range verrs {
		if _, seen := fe[e.Field()]; seen {
			continue
		}
		fe[e.Field()] = message(e)
	}
	return fe
}

// digitMessages keeps the wording each numeric field has always used.
var digitMessages = map[string]string{
	"phone":   "10 digits required",
	"pincode": "6 digits",
	"aadhaar": "Must be 12 digits",
}

func message(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "Required"
	case "letters":
		return "Letters only"
	case "gmail":
		return "Only @gmail.com allowed"
	case "len", "digits":
		if msg, ok := digitMessages[e.Field()]; ok {
			return msg
		}
		return fmt.Sprintf("Must be %s characters", e.Param())
	case "password":
		return PasswordProblem(fmt.Sprint(e.Value()))
	case "dob":
		return DOBProblem(fmt.Sprint(e.Value()))
	case "eqfield":
		return "Mismatch"
	case "gt":
		return fmt.Sprintf("Must be greater than %s", e.Param())
	case "min", "max":
		if e.Field() == "rating" {
			return "Rating must be between 1 and 5"
		}
		return fmt.Sprintf("Out of range (%s %s)", e.Tag(), e.Param())
	default:
		return e.Error()
	}
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// DigitsOnly filters a keystroke stream down to ASCII digits and truncates it
// at max characters (max <= 0 means no limit).
func DigitsOnly(input string, max int) string {
	var b strings.Builder
	for _, r := range input {
		if r < '0' || r > '9' {
			continue
		}
		if max > 0 && b.Len() >= max {
			break
		}
		b.WriteRune(r)
	}
	return b.String()
}

// LettersOnly keeps ASCII letters and spaces.
func LettersOnly(input string) string {
	var b strings.Builder
	for _, r := range input {
		if r == ' ' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// PasswordProblem returns the first unmet password rule, or "" when the
// password is acceptable.
func PasswordProblem(p string) string {
	switch {
	case len([]rune(p)) < 6:
		return "Min 6 chars"
	case !strings.ContainsFunc(p, unicode.IsUpper):
		return "Need 1 Capital Letter"
	case !strings.ContainsFunc(p, isSpecial):
		return "Need 1 Special Char"
	}
	return ""
}

func isSpecial(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

// Strength is the live password meter.
type Strength struct {
	Score int
	Label string
}

var strengthLabels = [...]string{"Enter Password", "Weak", "Medium", "Strong"}

// PasswordStrength scores one point each for length, an uppercase letter and
// a special character.
func PasswordStrength(p string) Strength {
	score := 0
	if len([]rune(p)) >= 6 {
		score++
	}
	if strings.ContainsFunc(p, unicode.IsUpper) {
		score++
	}
	if strings.ContainsFunc(p, isSpecial) {
		score++
	}
	return Strength{Score: score, Label: strengthLabels[score]}
}

// DOBProblem checks a YYYY-MM-DD birth date by calendar year, as the date
// picker does: not in the future and at least MinAge years ago.
func DOBProblem(dob string) string {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(dob))
	if err != nil {
		return "Use YYYY-MM-DD"
	}
	year := now().Year()
	switch {
	case t.Year() > year:
		return "Date cannot be in the future"
	case year-t.Year() < MinAge:
		return fmt.Sprintf("You must be at least %d years old", MinAge)
	}
	return ""
}
