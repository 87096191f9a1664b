package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/typegate-dev/typegate/domain/entities"
)

func TestViolation_Message(t *testing.T) {
	class := &entities.Declaration{Kind: entities.KindClass, Name: "com.acme.Service"}
	field := &entities.Declaration{Kind: entities.KindField, Name: "com.acme.Service.count"}

	t.Run("Dynamic compile disallowed", func(t *testing.T) {
		v := entities.Violation{Kind: entities.DynamicCompileDisallowed, Decl: class}
		assert.Equal(t, "dynamic compilation is disabled for class com.acme.Service", v.Message())
	})

	t.Run("Extensions limited names the allowed set", func(t *testing.T) {
		v := entities.Violation{
			Kind:    entities.ExtensionsLimited,
			Decl:    class,
			Allowed: []string{"A", "B"},
		}
		assert.Contains(t, v.Message(), "com.acme.Service")
		assert.Contains(t, v.Message(), "[A, B]")
	})

	t.Run("Untyped not allowed carries the kind", func(t *testing.T) {
		v := entities.Violation{Kind: entities.UntypedNotAllowed, Decl: field}
		assert.Equal(t, "untyped field declarations are not allowed: com.acme.Service.count", v.Message())
	})
}
