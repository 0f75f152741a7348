package cli

import (
	stderrors "errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/matzehuels/cargograph/pkg/errors"
)

// convertOpts holds the resolved options for cargotree2mermaid.
type convertOpts struct {
	input     string
	blacklist string
	output    string
	white     string
	direction string
	format    string
	watch     bool
	extra     []string // blacklisted names from the config file
}

// levelsOpts holds the resolved options for mermaidlevels.
type levelsOpts struct {
	input  string
	level  int
	up     bool
	down   bool
	output string
	format string
}

// convertInput and levelsInput are the validated views of the options.
// The flag tag names the command-line flag reported in errors.
type convertInput struct {
	Input     string `flag:"input" validate:"required"`
	Output    string `flag:"output" validate:"required_if=Watch true"`
	Watch     bool   `flag:"watch"`
	Direction string `flag:"direction" validate:"oneof=TD TB LR RL BT"`
	Format    string `flag:"format" validate:"oneof=mermaid dot svg"`
}

type levelsInput struct {
	Input     string `flag:"input" validate:"required"`
	Level     int    `flag:"level" validate:"min=0"`
	Direction string `flag:"up/down" validate:"oneof=up down"`
	Format    string `flag:"format" validate:"oneof=text json yaml"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return f.Tag.Get("flag")
	})
	return v
}

func (o *convertOpts) validate() error {
	return validateStruct(convertInput{
		Input:     o.input,
		Output:    o.output,
		Watch:     o.watch,
		Direction: o.direction,
		Format:    o.format,
	})
}

func (o *levelsOpts) validate() error {
	return validateStruct(levelsInput{
		Input:     o.input,
		Level:     o.level,
		Direction: o.direction(),
		Format:    o.format,
	})
}

// direction returns "up" or "down", or "" when neither flag is set.
func (o *levelsOpts) direction() string {
	switch {
	case o.up:
		return "up"
	case o.down:
		return "down"
	}
	return ""
}

// validateStruct runs the validator and converts the first failure into a
// coded error.
func validateStruct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !stderrors.As(err, &verrs) || len(verrs) == 0 {
		return errors.Wrap(errors.ErrCodeInternal, err, "validate options")
	}
	return fieldError(verrs[0])
}

func fieldError(fe validator.FieldError) error {
	switch fe.StructField() {
	case "Level":
		return errors.ValidateLevel(fe.Value().(int))
	case "Output":
		return errors.New(errors.ErrCodeInvalidInput, "--output is required with --watch")
	case "Input":
		return errors.New(errors.ErrCodeInvalidInput, "--%s is required", fe.Field())
	case "Direction":
		if fe.Field() == "up/down" {
			return errors.New(errors.ErrCodeInvalidInput, "one of --up or --down is required")
		}
		return errors.New(errors.ErrCodeInvalidDirection, "invalid direction %q (available: %s)",
			fe.Value(), strings.ReplaceAll(fe.Param(), " ", ", "))
	case "Format":
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format %q (available: %s)",
			fe.Value(), strings.ReplaceAll(fe.Param(), " ", ", "))
	}
	return errors.New(errors.ErrCodeInvalidInput, "invalid --%s: %s", fe.Field(), fmt.Sprint(fe.Value()))
}
