package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStylesRenderContent(t *testing.T) {
	// Styles must never swallow their input, whatever the color profile.
	assert.Contains(t, SuccessStyle.Render("done"), "done")
	assert.Contains(t, ErrorStyle.Render("failed"), "failed")
	assert.Contains(t, PathStyle.Render("/a/b"), "/a/b")
	assert.Contains(t, MutedStyle.Render("note"), "note")
}

func TestIndicators(t *testing.T) {
	assert.Contains(t, SuccessIndicator, "✓")
	assert.Contains(t, ErrorIndicator, "✗")
}
