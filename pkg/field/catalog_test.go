package field

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/flbulgarelli/formulario/pkg/normalization"
	"github.com/flbulgarelli/formulario/pkg/spec"
	"github.com/flbulgarelli/formulario/pkg/validation"
)

func newCatalog() *Catalog {
	return NewCatalog(validation.NewCatalog(), normalization.NewCatalog())
}

func TestLoadBuiltinTypes(t *testing.T) {
	catalog := newCatalog()

	cases := []struct {
		specType string
		expect   string
	}{
		{specType: "text", expect: TypeText},
		{specType: "number", expect: TypeNumber},
		{specType: "text_area", expect: TypeTextArea},
	}

	for _, tc := range cases {
		t.Run(tc.specType, func(t *testing.T) {
			loaded, err := catalog.Load(spec.FieldSpec{Type: tc.specType, Name: "answer"})
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			if loaded.Type() != tc.expect {
				t.Fatalf("expected type %q, got %q", tc.expect, loaded.Type())
			}
			if loaded.Name() != "answer" {
				t.Fatalf("expected name %q, got %q", "answer", loaded.Name())
			}
			if len(loaded.Validations()) != 0 || len(loaded.Normalizations()) != 0 {
				t.Fatal("expected no rules on a bare field")
			}
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	catalog := newCatalog()

	loaded, err := catalog.Load(spec.FieldSpec{Type: "text", Name: "username"})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Required() || loaded.Confirm() {
		t.Fatalf("required and confirm must default to false, got %v/%v", loaded.Required(), loaded.Confirm())
	}
}

func TestLoadMissingName(t *testing.T) {
	catalog := newCatalog()

	cases := []struct {
		name     string
		specType string
	}{
		{name: "valid type", specType: "text"},
		{name: "unsupported type", specType: "starship"},
		{name: "blank name", specType: "text"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := catalog.Load(spec.FieldSpec{Type: tc.specType, Name: "  "})
			if !errors.Is(err, ErrMissingFieldName) {
				t.Fatalf("expected ErrMissingFieldName, got %v", err)
			}
		})
	}
}

func TestLoadUnsupportedType(t *testing.T) {
	catalog := newCatalog()

	_, err := catalog.Load(spec.FieldSpec{Type: "starship", Name: "enterprise"})
	var unsupported UnsupportedTypeError
	if !errors.As(err, &unsupported) {
		t.Fatalf("expected UnsupportedTypeError, got %v", err)
	}
	if unsupported.Type != "starship" {
		t.Fatalf("expected error to name the type, got %q", unsupported.Type)
	}
}

func TestLoadResolvesDirectivesInOrder(t *testing.T) {
	catalog := newCatalog()

	loaded, err := catalog.Load(spec.FieldSpec{
		Type: "text",
		Name: "username",
		Validate: spec.Directives{
			{Kind: "regexp", Arg: `\w{4}`},
			{Kind: "nonblank"},
		},
		Normalize: spec.Directives{
			{Kind: "downcase"},
			{Kind: "trim"},
		},
	})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	validations := loaded.Validations()
	if len(validations) != 2 {
		t.Fatalf("expected 2 validations, got %d", len(validations))
	}
	re, ok := validations[0].(validation.Regexp)
	if !ok {
		t.Fatalf("expected first validation to be Regexp, got %T", validations[0])
	}
	if re.Pattern.String() != `\w{4}` {
		t.Fatalf("unexpected pattern %q", re.Pattern.String())
	}

	kinds := make([]string, 0, 2)
	for _, rule := range loaded.Normalizations() {
		kinds = append(kinds, rule.Kind())
	}
	if diff := cmp.Diff([]string{"downcase", "trim"}, kinds); diff != "" {
		t.Fatalf("normalization order mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadSurfacesDirectiveFailures(t *testing.T) {
	catalog := newCatalog()

	_, err := catalog.Load(spec.FieldSpec{
		Type:     "text",
		Name:     "username",
		Validate: spec.Directives{{Kind: "regexp", Arg: "(["}},
	})
	var patternErr validation.PatternError
	if !errors.As(err, &patternErr) {
		t.Fatalf("expected PatternError, got %v", err)
	}

	_, err = catalog.Load(spec.FieldSpec{
		Type:      "text",
		Name:      "username",
		Normalize: spec.Directives{{Kind: "upcase"}},
	})
	var unsupported normalization.UnsupportedKindError
	if !errors.As(err, &unsupported) {
		t.Fatalf("expected UnsupportedKindError, got %v", err)
	}
}

type date struct {
	Base
}

func (date) Type() string { return "date" }

func TestRegisterUnregisterCycle(t *testing.T) {
	catalog := newCatalog()
	catalog.Register("date", func(base Base) (Field, error) {
		return date{Base: base}, nil
	})

	loaded, err := catalog.Load(spec.FieldSpec{Type: "date", Name: "birthday", Required: true})
	if err != nil {
		t.Fatalf("Load after Register failed: %v", err)
	}
	if _, ok := loaded.(date); !ok {
		t.Fatalf("expected registered variant, got %T", loaded)
	}
	if loaded.Name() != "birthday" || !loaded.Required() {
		t.Fatalf("expected base attributes to carry over, got %+v", loaded)
	}

	catalog.Unregister("date")
	if _, err := catalog.Load(spec.FieldSpec{Type: "date", Name: "birthday"}); err == nil {
		t.Fatal("expected Load to fail after Unregister")
	}
}

func TestProducerErrorPropagatesUnwrapped(t *testing.T) {
	boom := errors.New("producer exploded")
	catalog := newCatalog()
	catalog.Register("broken", func(Base) (Field, error) { return nil, boom })

	_, err := catalog.Load(spec.FieldSpec{Type: "broken", Name: "x"})
	if err != boom {
		t.Fatalf("expected the producer error as-is, got %v", err)
	}
}
