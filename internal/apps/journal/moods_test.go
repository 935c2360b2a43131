package journal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeMood(t *testing.T) {
	assert.Equal(t, "happy", NormalizeMood("Happy"))
	assert.Equal(t, "calm", NormalizeMood("  calm "))
	assert.Equal(t, "neutral", NormalizeMood("ecstatic"))
	assert.Equal(t, "neutral", NormalizeMood(""))
}

func TestIsValidMood(t *testing.T) {
	for _, m := range Moods {
		assert.True(t, IsValidMood(m))
	}
	assert.False(t, IsValidMood("HAPPY"))
	assert.False(t, IsValidMood("bored"))
}
