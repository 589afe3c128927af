package infrastructure

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParsePaper(t *testing.T) {
	assert.Equal(t, A4, ParsePaper("a4"))
	assert.Equal(t, A4, ParsePaper("A4"))
	assert.Equal(t, Letter, ParsePaper("letter"))
	assert.Equal(t, Letter, ParsePaper(""))
}

func TestNewChromedpRenderer_DefaultTimeout(t *testing.T) {
	r := NewChromedpRenderer(Letter, 0)
	assert.Equal(t, 60*time.Second, r.timeout)
}
