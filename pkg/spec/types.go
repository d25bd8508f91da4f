// Package spec holds the typed input model for form specs: the nested
// key-value structure handed to the loader after the raw document has been
// parsed. Directive mappings keep their document order because composed
// normalizations are order-sensitive.
package spec

// FormSpec is the top-level form definition.
type FormSpec struct {
	Name        string      `json:"name,omitempty" yaml:"name,omitempty"`
	DisplayName string      `json:"display_name,omitempty" yaml:"display_name,omitempty"`
	MaxAnswers  int         `json:"max_answers,omitempty" yaml:"max_answers,omitempty"`
	StartDate   any         `json:"start_date,omitempty" yaml:"start_date,omitempty"`
	EndDate     any         `json:"end_date,omitempty" yaml:"end_date,omitempty"`
	Fields      []FieldSpec `json:"fields,omitempty" yaml:"fields,omitempty"`

	// Accepted in the input but not yet part of the loaded Form.
	AllowEdit bool `json:"allow_edit,omitempty" yaml:"allow_edit,omitempty"`
	Captcha   bool `json:"captcha,omitempty" yaml:"captcha,omitempty"`
	Save      bool `json:"save,omitempty" yaml:"save,omitempty"`
}

// FieldSpec is one field definition inside a form spec.
type FieldSpec struct {
	Type      string     `json:"type,omitempty" yaml:"type,omitempty"`
	Name      string     `json:"name,omitempty" yaml:"name,omitempty"`
	Required  bool       `json:"required,omitempty" yaml:"required,omitempty"`
	Confirm   bool       `json:"confirm,omitempty" yaml:"confirm,omitempty"`
	Validate  Directives `json:"validate,omitempty" yaml:"validate,omitempty"`
	Normalize Directives `json:"normalize,omitempty" yaml:"normalize,omitempty"`
}
