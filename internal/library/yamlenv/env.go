// Package yamlenv provides a config leaf that is either a YAML literal or a
// reference to an environment variable with an optional default:
//
//	level: debug
//	level: ${LOG_LEVEL}
//	level: ${LOG_LEVEL:info}
package yamlenv

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

var regexRef = regexp.MustCompile(`^\$\{([A-Za-z_][A-Za-z0-9_]*)(:(.*))?\}$`)

type Env[T any] struct {
	Value T
	// Var is the referenced variable name, empty for literals.
	Var string
}

func New[T any](value T) *Env[T] {
	return &Env[T]{Value: value}
}

func (e *Env[T]) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected scalar value", node.Line)
	}

	m := regexRef.FindStringSubmatch(node.Value)
	if m == nil {
		if err := node.Decode(&e.Value); err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}

		return nil
	}

	e.Var = m[1]

	raw, ok := os.LookupEnv(e.Var)
	if !ok || raw == "" {
		// m[2] is ":default", empty when no default was given
		if m[2] == "" {
			return fmt.Errorf("line %d: environment variable %s is not set", node.Line, e.Var)
		}
		raw = m[3]
	}

	resolved := yaml.Node{Kind: yaml.ScalarNode, Value: raw, Line: node.Line}
	if err := resolved.Decode(&e.Value); err != nil {
		return fmt.Errorf("line %d: %s=%q: %w", node.Line, e.Var, raw, err)
	}

	return nil
}
