package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/typegate-dev/typegate/domain/entities"
)

func TestHasDisallowedExtensions(t *testing.T) {
	allowed := []string{"A"}

	t.Run("No directive means nothing to limit", func(t *testing.T) {
		d := &entities.Declaration{Kind: entities.KindClass, Name: "com.acme.Foo"}
		assert.False(t, hasDisallowedExtensions(d, allowed))
	})

	t.Run("Directive with zero extensions never triggers", func(t *testing.T) {
		d := &entities.Declaration{
			Kind:        entities.KindClass,
			Name:        "com.acme.Foo",
			Annotations: []entities.Annotation{{Name: entities.DirectiveStatic}},
		}
		assert.False(t, hasDisallowedExtensions(d, allowed))
		assert.False(t, hasDisallowedExtensions(d, nil))
	})

	t.Run("All extensions allowed", func(t *testing.T) {
		d := &entities.Declaration{
			Kind: entities.KindClass,
			Name: "com.acme.Foo",
			Annotations: []entities.Annotation{
				{Name: entities.DirectiveStatic, Extensions: []string{"A"}},
			},
		}
		assert.False(t, hasDisallowedExtensions(d, allowed))
	})

	t.Run("One disallowed extension triggers", func(t *testing.T) {
		d := &entities.Declaration{
			Kind: entities.KindClass,
			Name: "com.acme.Foo",
			Annotations: []entities.Annotation{
				{Name: entities.DirectiveStatic, Extensions: []string{"A", "B"}},
			},
		}
		assert.True(t, hasDisallowedExtensions(d, allowed))
	})

	t.Run("Empty allowed set disallows every listed extension", func(t *testing.T) {
		d := &entities.Declaration{
			Kind: entities.KindClass,
			Name: "com.acme.Foo",
			Annotations: []entities.Annotation{
				{Name: entities.DirectiveStatic, Extensions: []string{"A"}},
			},
		}
		assert.True(t, hasDisallowedExtensions(d, nil))
	})

	t.Run("Every static directive is inspected", func(t *testing.T) {
		d := &entities.Declaration{
			Kind: entities.KindClass,
			Name: "com.acme.Foo",
			Annotations: []entities.Annotation{
				{Name: entities.DirectiveStatic, Extensions: []string{"A"}},
				{Name: entities.DirectiveStatic, Extensions: []string{"B"}},
			},
		}
		assert.True(t, hasDisallowedExtensions(d, allowed))
	})

	t.Run("Other directives are ignored", func(t *testing.T) {
		d := &entities.Declaration{
			Kind: entities.KindClass,
			Name: "com.acme.Foo",
			Annotations: []entities.Annotation{
				{Name: entities.DirectiveDynamic, Extensions: []string{"B"}},
			},
		}
		assert.False(t, hasDisallowedExtensions(d, allowed))
	})
}
