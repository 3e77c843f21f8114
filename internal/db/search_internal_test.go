package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLikePatternMatchesTermAsTyped(t *testing.T) {
	assert.Equal(t, "%The %", likePattern("The "))
	assert.Equal(t, `%50\%%`, likePattern("50%"))
	assert.Equal(t, `%a\_b%`, likePattern("a_b"))
	assert.Equal(t, `%C:\\%`, likePattern(`C:\`))
}
