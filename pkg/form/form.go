// Package form holds the loaded aggregate: ordered fields plus form-level
// metadata. Forms are assembled once by the loader and not mutated
// afterwards.
package form

import (
	"fmt"
	"time"

	"github.com/flbulgarelli/formulario/pkg/field"
)

// UnknownAnswerError reports an answer key with no matching field.
type UnknownAnswerError struct {
	Key string
}

func (e UnknownAnswerError) Error() string {
	return fmt.Sprintf("form: no field named %q", e.Key)
}

// Form is the assembled aggregate. Field order matches declaration order;
// field names are not required to be unique here — uniqueness is a
// validation concern, and lookups return the first match.
type Form struct {
	Name        string
	DisplayName string
	MaxAnswers  int
	StartDate   time.Time
	EndDate     time.Time
	Fields      []field.Field
}

// Size returns the number of fields.
func (f *Form) Size() int { return len(f.Fields) }

// FieldByName returns the first field with the given name.
func (f *Form) FieldByName(name string) (field.Field, bool) {
	for _, candidate := range f.Fields {
		if candidate.Name() == name {
			return candidate, true
		}
	}
	return nil, false
}

// Normalize applies each field's normalization sequence to the answer under
// its name, rules composing in declaration order. The result has the same
// key set as the input. An answer key with no matching field fails with
// UnknownAnswerError.
func (f *Form) Normalize(answers map[string]string) (map[string]string, error) {
	out := make(map[string]string, len(answers))
	for key, value := range answers {
		target, ok := f.FieldByName(key)
		if !ok {
			return nil, UnknownAnswerError{Key: key}
		}
		for _, rule := range target.Normalizations() {
			value = rule.Apply(value)
		}
		out[key] = value
	}
	return out, nil
}

// Validate contractually maps field names to error descriptions for every
// field whose answer fails its validations. The loop is not implemented yet:
// it reports no errors regardless of input. The resolved validation rules on
// each field already carry the data a real implementation needs.
func (f *Form) Validate(answers map[string]string) map[string]string {
	return map[string]string{}
}
