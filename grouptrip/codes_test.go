package grouptrip

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodeGenerator_GenerateShape(t *testing.T) {
	g := NewCodeGenerator()

	for i := 0; i < 100; i++ {
		code, err := g.Generate(func(string) bool { return false })
		assert.NoError(t, err)
		assert.Len(t, code, CodeLength)
		for _, r := range code {
			assert.True(t, strings.ContainsRune(codeAlphabet, r), "unexpected character %q in code %q", r, code)
		}
	}
}

func TestCodeGenerator_AlphabetExcludesConfusables(t *testing.T) {
	for _, forbidden := range []string{"0", "O", "1", "I", "L"} {
		assert.NotContains(t, codeAlphabet, forbidden)
	}
}

func TestCodeGenerator_Uniqueness(t *testing.T) {
	g := NewCodeGenerator()
	seen := make(map[string]struct{}, 10000)

	for i := 0; i < 10000; i++ {
		code, err := g.Generate(func(code string) bool {
			_, taken := seen[code]
			return taken
		})
		assert.NoError(t, err)
		_, dup := seen[code]
		assert.False(t, dup, "code %q handed out twice", code)
		seen[code] = struct{}{}
	}
}

func TestCodeGenerator_RetriesOnCollision(t *testing.T) {
	g := NewCodeGenerator()

	calls := 0
	code, err := g.Generate(func(string) bool {
		calls++
		return calls <= 3
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, code)
	assert.Equal(t, 4, calls)
}

func TestCodeGenerator_ExhaustedKeyspace(t *testing.T) {
	g := NewCodeGenerator()

	_, err := g.Generate(func(string) bool { return true })
	assert.ErrorIs(t, err, ErrCodespaceExhausted)
}
