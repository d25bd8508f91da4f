// Package openapi derives form specs from OpenAPI 3 documents, so an
// operation's request body can feed the loader without a hand-written spec.
package openapi

import (
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/flbulgarelli/formulario/pkg/field"
	"github.com/flbulgarelli/formulario/pkg/spec"
)

// Load parses an OpenAPI document payload.
func Load(data []byte) (*openapi3.T, error) {
	loader := &openapi3.Loader{}
	doc, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("openapi: load document: %w", err)
	}
	return doc, nil
}

// FormSpec derives a form spec from the request body of the operation with
// the given operationId. Scalar properties become fields; object and array
// properties have no field equivalent and are skipped.
func FormSpec(doc *openapi3.T, operationID string) (spec.FormSpec, error) {
	operation, err := findOperation(doc, operationID)
	if err != nil {
		return spec.FormSpec{}, err
	}

	schema := requestSchema(operation)
	if schema == nil {
		return spec.FormSpec{}, fmt.Errorf("openapi: operation %q has no object request body", operationID)
	}

	required := make(map[string]struct{}, len(schema.Required))
	for _, name := range schema.Required {
		required[name] = struct{}{}
	}

	// Schema properties are an unordered map; sort for reproducible field
	// order.
	names := make([]string, 0, len(schema.Properties))
	for name := range schema.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	out := spec.FormSpec{
		Name:        operationID,
		DisplayName: operation.Summary,
	}
	for _, name := range names {
		ref := schema.Properties[name]
		if ref == nil || ref.Value == nil {
			continue
		}
		fieldSpec, ok := fieldFromProperty(name, ref.Value)
		if !ok {
			continue
		}
		if _, isRequired := required[name]; isRequired {
			fieldSpec.Required = true
		}
		out.Fields = append(out.Fields, fieldSpec)
	}
	return out, nil
}

func findOperation(doc *openapi3.T, operationID string) (*openapi3.Operation, error) {
	if doc == nil || doc.Paths == nil {
		return nil, fmt.Errorf("openapi: document has no paths")
	}
	for _, item := range doc.Paths.Map() {
		if item == nil {
			continue
		}
		for _, operation := range item.Operations() {
			if operation != nil && operation.OperationID == operationID {
				return operation, nil
			}
		}
	}
	return nil, fmt.Errorf("openapi: operation %q not found", operationID)
}

func requestSchema(operation *openapi3.Operation) *openapi3.Schema {
	if operation.RequestBody == nil || operation.RequestBody.Value == nil {
		return nil
	}
	content := operation.RequestBody.Value.Content
	for _, mediaType := range []string{"application/json", "application/x-www-form-urlencoded", "multipart/form-data"} {
		if mt, ok := content[mediaType]; ok && mt.Schema != nil {
			return mt.Schema.Value
		}
	}
	for _, mt := range content {
		if mt.Schema != nil {
			return mt.Schema.Value
		}
	}
	return nil
}

func fieldFromProperty(name string, property *openapi3.Schema) (spec.FieldSpec, bool) {
	fieldType, ok := propertyFieldType(property)
	if !ok {
		return spec.FieldSpec{}, false
	}
	out := spec.FieldSpec{Type: fieldType, Name: name}
	if property.Pattern != "" {
		out.Validate = spec.Directives{{Kind: "regexp", Arg: property.Pattern}}
	}
	return out, true
}

func propertyFieldType(property *openapi3.Schema) (string, bool) {
	switch primaryType(property.Type) {
	case "string":
		switch strings.ToLower(property.Format) {
		case "textarea", "multiline":
			return field.TypeTextArea, true
		default:
			return field.TypeText, true
		}
	case "integer", "number":
		return field.TypeNumber, true
	default:
		return "", false
	}
}

func primaryType(types *openapi3.Types) string {
	if types == nil {
		return ""
	}
	values := types.Slice()
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
