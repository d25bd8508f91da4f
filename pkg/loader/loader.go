// Package loader is the top-level entry point converting a form spec into a
// loaded Form. Loading is a pure in-memory transform: any failure aborts the
// whole load and propagates to the caller, there is no partial-success mode.
package loader

import (
	"fmt"
	"strings"
	"time"

	"github.com/flbulgarelli/formulario/pkg/field"
	"github.com/flbulgarelli/formulario/pkg/form"
	"github.com/flbulgarelli/formulario/pkg/normalization"
	"github.com/flbulgarelli/formulario/pkg/spec"
	"github.com/flbulgarelli/formulario/pkg/validation"
)

// Accepted ISO 8601 layouts for start_date/end_date, tried in order. The
// bare offset form ("-03") is common in hand-written specs.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05-07",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04-07:00",
	"2006-01-02T15:04-07",
	"2006-01-02T15:04",
	"2006-01-02",
}

// Loader assembles forms through a field catalog. The zero value is not
// usable; construct with New.
type Loader struct {
	fields *field.Catalog
}

// Option configures a Loader.
type Option func(*Loader)

// WithFieldCatalog replaces the default field catalog, letting callers
// inject catalogs with extensions already registered.
func WithFieldCatalog(catalog *field.Catalog) Option {
	return func(l *Loader) {
		l.fields = catalog
	}
}

// New constructs a Loader. Without options it wires a fresh field catalog
// over fresh validation and normalization catalogs, so each loader's
// registrations stay isolated.
func New(options ...Option) *Loader {
	l := &Loader{}
	for _, option := range options {
		option(l)
	}
	if l.fields == nil {
		l.fields = field.NewCatalog(validation.NewCatalog(), normalization.NewCatalog())
	}
	return l
}

// FieldCatalog returns the catalog fields resolve through, for registering
// extensions.
func (l *Loader) FieldCatalog() *field.Catalog { return l.fields }

// Load converts a form spec into a Form. Form-level attributes pass through
// verbatim; date attributes parse per dateLayouts when given as text and
// pass through unchanged when already typed. Fields load in declaration
// order. Spec attributes not yet modeled (allow_edit, captcha, save) are
// accepted and ignored.
func (l *Loader) Load(formSpec spec.FormSpec) (*form.Form, error) {
	start, err := parseDate(formSpec.StartDate)
	if err != nil {
		return nil, fmt.Errorf("loader: start_date: %w", err)
	}
	end, err := parseDate(formSpec.EndDate)
	if err != nil {
		return nil, fmt.Errorf("loader: end_date: %w", err)
	}

	fields := make([]field.Field, 0, len(formSpec.Fields))
	for i, fieldSpec := range formSpec.Fields {
		loaded, err := l.fields.Load(fieldSpec)
		if err != nil {
			return nil, fmt.Errorf("loader: field %d: %w", i, err)
		}
		fields = append(fields, loaded)
	}

	return &form.Form{
		Name:        formSpec.Name,
		DisplayName: formSpec.DisplayName,
		MaxAnswers:  formSpec.MaxAnswers,
		StartDate:   start,
		EndDate:     end,
		Fields:      fields,
	}, nil
}

func parseDate(value any) (time.Time, error) {
	switch v := value.(type) {
	case nil:
		return time.Time{}, nil
	case time.Time:
		return v, nil
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return time.Time{}, nil
		}
		for _, layout := range dateLayouts {
			if parsed, err := time.Parse(layout, trimmed); err == nil {
				return parsed, nil
			}
		}
		return time.Time{}, fmt.Errorf("unparseable date %q", v)
	default:
		return time.Time{}, fmt.Errorf("unsupported date value %T", value)
	}
}
