package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindMatching(t *testing.T) {
	assert.True(t, IsNotFound(NotFound("playlist not found")))
	assert.True(t, IsAuthorization(Authorization("forbidden")))
	assert.True(t, IsInvariant(Invariant("album already liked")))

	assert.False(t, IsNotFound(Authorization("forbidden")))
	assert.False(t, IsAuthorization(NotFound("playlist not found")))
	assert.False(t, IsInvariant(errors.New("plain error")))

	assert.False(t, IsNotFound(nil))
}

func TestKindSurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("handling request: %w", NotFound("song not found"))
	assert.True(t, IsNotFound(err))
	assert.False(t, IsAuthorization(err))
}

func TestMessage(t *testing.T) {
	err := NotFound("playlist not found")
	assert.Equal(t, "playlist not found", err.Error())

	formatted := NotFoundf("playlist %s not found", "playlist-1")
	assert.Equal(t, "playlist playlist-1 not found", formatted.Error())
}
