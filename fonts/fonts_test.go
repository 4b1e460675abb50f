package fonts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	require.NoError(t, LoadDefaults())
	for _, name := range []FontName{Label, Hint, Title} {
		assert.NotNil(t, name.Get())
	}
}

func TestGetUnknownFontPanics(t *testing.T) {
	assert.Panics(t, func() { FontName("missing").Get() })
}

func TestLoadFontRejectsGarbage(t *testing.T) {
	assert.Error(t, LoadFontWithSize("bad", []byte("not a font"), 10))
}
