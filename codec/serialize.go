package codec

import (
	j "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Serialize encodes v as JSON. Map keys are sorted and struct fields keep
// their declaration order, so equal values always produce equal text.
func Serialize(v any) (string, error) {
	b, err := j.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// SerializeYAML encodes v as a YAML document.
func SerializeYAML(v any) (string, error) {
	b, err := yaml.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
