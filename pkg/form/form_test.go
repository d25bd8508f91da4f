package form

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/flbulgarelli/formulario/pkg/field"
	"github.com/flbulgarelli/formulario/pkg/normalization"
)

func textField(name string, rules ...normalization.Rule) field.Field {
	return field.Text{Base: field.NewBase(name, false, false, nil, rules)}
}

func TestSize(t *testing.T) {
	empty := &Form{}
	if empty.Size() != 0 {
		t.Fatalf("expected size 0, got %d", empty.Size())
	}

	loaded := &Form{Fields: []field.Field{textField("a"), textField("b")}}
	if loaded.Size() != 2 {
		t.Fatalf("expected size 2, got %d", loaded.Size())
	}
}

func TestNormalizeComposesInDeclarationOrder(t *testing.T) {
	loaded := &Form{Fields: []field.Field{
		textField("username", normalization.Downcase{}, normalization.Trim{}),
	}}

	got, err := loaded.Normalize(map[string]string{"username": " FooO "})
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	if diff := cmp.Diff(map[string]string{"username": "fooo"}, got); diff != "" {
		t.Fatalf("normalized answers mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalizeIsIdempotentOnNormalizedInput(t *testing.T) {
	loaded := &Form{Fields: []field.Field{
		textField("username", normalization.Downcase{}, normalization.Trim{}),
	}}

	once, err := loaded.Normalize(map[string]string{"username": " FooO "})
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	twice, err := loaded.Normalize(once)
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	if diff := cmp.Diff(once, twice); diff != "" {
		t.Fatalf("expected a fixed point (-first +second):\n%s", diff)
	}
}

func TestNormalizeLeavesRulelessFieldsAlone(t *testing.T) {
	loaded := &Form{Fields: []field.Field{textField("comment")}}

	got, err := loaded.Normalize(map[string]string{"comment": " As Is "})
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	if got["comment"] != " As Is " {
		t.Fatalf("expected untouched value, got %q", got["comment"])
	}
}

func TestNormalizeUnknownKeyFails(t *testing.T) {
	loaded := &Form{Fields: []field.Field{textField("username")}}

	_, err := loaded.Normalize(map[string]string{"password": "hunter2"})
	var unknown UnknownAnswerError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownAnswerError, got %v", err)
	}
	if unknown.Key != "password" {
		t.Fatalf("expected error to name the key, got %q", unknown.Key)
	}
}

func TestFieldByNameReturnsFirstMatch(t *testing.T) {
	first := textField("dup", normalization.Downcase{})
	second := textField("dup", normalization.Trim{})
	loaded := &Form{Fields: []field.Field{first, second}}

	got, ok := loaded.FieldByName("dup")
	if !ok {
		t.Fatal("expected a match")
	}
	if len(got.Normalizations()) != 1 || got.Normalizations()[0].Kind() != "downcase" {
		t.Fatal("expected the first declared field to win")
	}
}

func TestValidateIsAStub(t *testing.T) {
	loaded := &Form{Fields: []field.Field{textField("username")}}

	got := loaded.Validate(map[string]string{"username": ""})
	if len(got) != 0 {
		t.Fatalf("validate stub must report no errors, got %v", got)
	}
}
