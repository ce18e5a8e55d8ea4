package model

// Parameter describes one argument of a callable function.
type Parameter struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

// FunctionDescriptor is the catalog entry the intent classifier may choose.
// Parameters keep declaration order so prompts built from the same catalog are
// byte-identical.
type FunctionDescriptor struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Parameters  []Parameter `json:"parameters,omitempty"`
	Required    []string    `json:"required,omitempty"`
}

// JSONSchema renders the parameters as a JSON Schema object.
func (d FunctionDescriptor) JSONSchema() map[string]interface{} {
	props := make(map[string]interface{}, len(d.Parameters))
	for _, p := range d.Parameters {
		prop := map[string]interface{}{}
		if p.Type != "" {
			prop["type"] = p.Type
		}
		if p.Description != "" {
			prop["description"] = p.Description
		}
		props[p.Name] = prop
	}

	schema := map[string]interface{}{
		"type":       "object",
		"properties": props,
	}
	if len(d.Required) > 0 {
		required := make([]interface{}, len(d.Required))
		for i, r := range d.Required {
			required[i] = r
		}
		schema["required"] = required
	}
	return schema
}
