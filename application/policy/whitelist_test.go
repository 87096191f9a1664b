package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWhitelisted(t *testing.T) {
	t.Run("Substring match, not exact", func(t *testing.T) {
		assert.True(t, Whitelisted("com.acme.Foo", []string{"acme"}))
	})

	t.Run("Partial name collisions match", func(t *testing.T) {
		// The loose substring contract is deliberate: whitelisting "Foo"
		// also exempts "FooBar" and "NotFoo".
		assert.True(t, Whitelisted("com.acme.FooBar", []string{"Foo"}))
		assert.True(t, Whitelisted("com.acme.NotFoo", []string{"Foo"}))
	})

	t.Run("No entry matches", func(t *testing.T) {
		assert.False(t, Whitelisted("com.acme.Foo", []string{"other", "legacy"}))
	})

	t.Run("Empty whitelist", func(t *testing.T) {
		assert.False(t, Whitelisted("com.acme.Foo", nil))
		assert.False(t, Whitelisted("com.acme.Foo", []string{}))
	})

	t.Run("Empty entries never match", func(t *testing.T) {
		assert.False(t, Whitelisted("com.acme.Foo", []string{""}))
	})

	t.Run("Any of several entries is enough", func(t *testing.T) {
		assert.True(t, Whitelisted("com.acme.Foo", []string{"other", "acme"}))
	})
}
