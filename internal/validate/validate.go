// Package validate checks authored link entries against the schema
// registry tables.
package validate

import (
	"fmt"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/osintlab/linkforge/internal/models"
	"github.com/osintlab/linkforge/internal/registry"
)

// placeholderRe matches {name}, {name:formatter}, and {name|formatter}.
var placeholderRe = regexp.MustCompile(`\{(\w+)(?:[|:](\w+))?\}`)

// Entry returns every schema violation found in e, in a fixed order.
// All checks run even after one fails: the result is a complete
// diagnostic pass, never fail-fast. source is the file the entry came
// from and only affects the error text. Entry touches neither the
// network nor the filesystem.
func Entry(e *models.RawEntry, source string) []string {
	loc := Location(source, e.ID)
	var errs []string

	required := []struct {
		name, value string
	}{
		{"id", e.ID},
		{"display", e.Display},
		{"url", e.URL},
	}
	for _, field := range required {
		if err := validation.Validate(field.value, validation.Required); err != nil {
			errs = append(errs, fmt.Sprintf("%s: missing required field '%s'", loc, field.name))
		}
	}

	if len(e.Types) == 0 {
		errs = append(errs,
			fmt.Sprintf("%s: missing required field 'types'", loc),
			fmt.Sprintf("%s: 'types' must be a non-empty list", loc))
	} else {
		for _, t := range e.Types {
			if err := validation.Validate(t, registry.TypeRule); err != nil {
				errs = append(errs, fmt.Sprintf("%s: unknown type '%s' (extend registry.Types if intentional)", loc, t))
			}
		}
	}

	pw := e.PayWall
	if pw == "" {
		pw = "Free"
	}
	if err := validation.Validate(pw, registry.PaywallRule); err != nil {
		errs = append(errs, fmt.Sprintf("%s: payWall must be one of %v, got '%s'", loc, registry.Paywalls, pw))
	}

	for _, m := range placeholderRe.FindAllStringSubmatch(e.URL, -1) {
		formatter := m[2]
		if formatter == "" {
			continue
		}
		if err := validation.Validate(formatter, registry.FormatterRule); err != nil {
			errs = append(errs, fmt.Sprintf("%s: unknown formatter '%s' in URL (extend registry.Formatters if intentional)", loc, formatter))
		}
	}

	return errs
}

// Location formats the error-location prefix for an entry: the source
// file plus its id, or ? when the id is absent.
func Location(source, id string) string {
	if id == "" {
		id = "?"
	}
	return fmt.Sprintf("%s id=%s", source, id)
}
