package params

import (
	"bytes"
	"fmt"
	"strings"

	"cl-interface/internal/domain/errors"

	"github.com/mattn/go-shellwords"
	"gopkg.in/yaml.v3"
)

// RawArguments holds the parameters exactly as the host engine wrote them.
// Each value is a string (scalar text), a []string (sequence of scalars) or
// nil (explicit null).
type RawArguments map[string]interface{}

// Parse decodes the content of an arguments file. JSON and YAML mappings
// are accepted, as well as old style "key=value" lines with shell quoting.
// A document not starting with '{' is read as key=value first, so quoted
// values may contain YAML syntax.
func Parse(content []byte) (RawArguments, error) {
	trimmed := bytes.TrimSpace(content)
	if len(trimmed) == 0 {
		return RawArguments{}, nil
	}

	if trimmed[0] == '{' {
		args, err := parseMapping(trimmed)
		if err != nil && !errors.IsValidationError(err) {
			return nil, errors.NewValidationError("malformed arguments document", err)
		}
		return args, err
	}

	args, kvErr := parseKeyValue(string(trimmed))
	if kvErr == nil {
		return args, nil
	}

	args, err := parseMapping(trimmed)
	switch {
	case err == nil:
		return args, nil
	case errors.IsValidationError(err):
		return nil, err
	}
	return nil, kvErr
}

// parseMapping decodes a JSON or YAML mapping document
func parseMapping(content []byte) (RawArguments, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, err
	}
	if len(doc.Content) == 0 || doc.Content[0].Kind != yaml.MappingNode {
		return nil, fmt.Errorf("not a mapping")
	}
	return fromMappingNode(doc.Content[0])
}

func fromMappingNode(node *yaml.Node) (RawArguments, error) {
	args := RawArguments{}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		value := node.Content[i+1]

		switch value.Kind {
		case yaml.ScalarNode:
			if value.Tag == "!!null" {
				args[key] = nil
				continue
			}
			args[key] = value.Value
		case yaml.SequenceNode:
			items, err := scalarItems(value)
			if err != nil {
				return nil, errors.NewValidationError(fmt.Sprintf("parameter %s", key), err)
			}
			args[key] = items
		default:
			return nil, errors.NewValidationError(fmt.Sprintf("parameter %s has an unsupported value type", key), nil)
		}
	}
	return args, nil
}

func parseKeyValue(line string) (RawArguments, error) {
	words, err := shellwords.Parse(line)
	if err != nil {
		return nil, errors.NewValidationError("malformed arguments line", err)
	}

	args := RawArguments{}
	for _, word := range words {
		key, value, found := strings.Cut(word, "=")
		if !found || key == "" {
			return nil, errors.NewValidationError(fmt.Sprintf("malformed argument %q, expected key=value", word), nil)
		}
		args[key] = value
	}
	return args, nil
}

// splitList turns the text of a list-valued option into its items. Flow
// sequences ("['a', 'b']"), comma separated values and single values are
// accepted.
func splitList(text string) ([]string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}

	if strings.HasPrefix(text, "[") {
		var doc yaml.Node
		if err := yaml.Unmarshal([]byte(text), &doc); err != nil {
			return nil, err
		}
		if len(doc.Content) == 0 || doc.Content[0].Kind != yaml.SequenceNode {
			return nil, fmt.Errorf("not a list: %s", text)
		}
		return scalarItems(doc.Content[0])
	}

	var items []string
	for _, part := range strings.Split(text, ",") {
		if part = strings.TrimSpace(part); part != "" {
			items = append(items, part)
		}
	}
	return items, nil
}

func scalarItems(node *yaml.Node) ([]string, error) {
	var items []string
	for _, child := range node.Content {
		if child.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("list items must be scalars")
		}
		if item := strings.TrimSpace(child.Value); item != "" {
			items = append(items, item)
		}
	}
	return items, nil
}
