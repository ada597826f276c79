package validate

import (
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"

	"StockWatch/internal/model"
)

// DateLayout is the only accepted calendar date format.
const DateLayout = "2006-01-02"

// symbolPattern covers plain tickers plus Yahoo index (^GSPC) and
// FX (EURUSD=X) style symbols.
var symbolPattern = regexp.MustCompile(`^[A-Za-z0-9.^=-]{1,12}$`)

var v *validator.Validate

func init() {
	v = validator.New()
	// Registration only fails for a blank tag name.
	_ = v.RegisterValidation("symbol", func(fl validator.FieldLevel) bool {
		return symbolPattern.MatchString(fl.Field().String())
	})
}

// Args are the raw arguments of a public operation, checked before any
// network call is made.
type Args struct {
	Tickers []string `validate:"required,min=1,dive,required,symbol"`
	Start   string   `validate:"required,datetime=2006-01-02"`
	End     string   `validate:"required,datetime=2006-01-02"`
}

// Check validates the arguments and returns the parsed date range.
func Check(args Args) (model.DateRange, error) {
	if err := v.Struct(args); err != nil {
		return model.DateRange{}, mapFieldError(err)
	}

	// Formats are already verified, parsing cannot fail here.
	start, _ := time.Parse(DateLayout, args.Start)
	end, _ := time.Parse(DateLayout, args.End)
	if end.Before(start) {
		return model.DateRange{}, fmt.Errorf("end %s precedes start %s: %w",
			args.End, args.Start, model.ErrInvalidDateRange)
	}
	return model.DateRange{Start: start, End: end}, nil
}

// mapFieldError maps the first validator field error onto the error taxonomy.
func mapFieldError(err error) error {
	var fields validator.ValidationErrors
	if !errors.As(err, &fields) {
		return err
	}
	fe := fields[0]
	switch fe.Tag() {
	case "datetime":
		return fmt.Errorf("%s %q is not a calendar date: %w",
			fe.Field(), fe.Value(), model.ErrInvalidDateFormat)
	case "symbol":
		return fmt.Errorf("ticker %q: %w", fe.Value(), model.ErrInvalidInputType)
	default: // required, min
		if fe.Field() == "Start" || fe.Field() == "End" {
			return fmt.Errorf("%s is missing: %w", fe.Field(), model.ErrInvalidDateFormat)
		}
		return fmt.Errorf("%s is missing: %w", fe.Field(), model.ErrInvalidInputType)
	}
}
