package ringconfig

import (
	"strings"
	"testing"

	"github.com/benoitkugler/progresscircle/ringcolor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromMarkup(t *testing.T) {
	doc := `<html><body>
		<div class="other"></div>
		<div id="ring" data-progresscircle='{"width": 80, "animation": false, "defaultColor": "#333"}'></div>
		<div data-progresscircle='{"width": 10}'></div>
	</body></html>`
	p, err := FromMarkup(strings.NewReader(doc), "text/html; charset=utf-8")
	require.NoError(t, err)
	require.NotNil(t, p.Width)
	assert.Equal(t, 80, *p.Width)
	assert.Nil(t, p.Height)

	o := Resolve(Partial{Width: Int(90)}, p)
	assert.Equal(t, 90, o.Width)
	assert.False(t, o.Animation)
	assert.Equal(t, "#333", o.DefaultColor)
}

func TestFromMarkupLatin1(t *testing.T) {
	doc := "<span data-progresscircle='{\"canvasClass\": \"caf\xe9\"}'></span>"
	p, err := FromMarkup(strings.NewReader(doc), "text/html; charset=iso-8859-1")
	require.NoError(t, err)
	require.NotNil(t, p.CanvasClass)
	assert.Equal(t, "café", *p.CanvasClass)
}

func TestFromMarkupMissing(t *testing.T) {
	p, err := FromMarkup(strings.NewReader(`<p>no options</p>`), "")
	require.NoError(t, err)
	assert.Equal(t, Partial{}, p)
}

func TestFromMarkupMalformed(t *testing.T) {
	_, err := FromMarkup(strings.NewReader(`<div data-progresscircle="{width: 2"></div>`), "")
	require.Error(t, err)
	assert.ErrorIs(t, err, ringcolor.ErrFormat)
	var pe *PayloadError
	assert.ErrorAs(t, err, &pe)
	assert.Equal(t, "{width: 2", pe.Payload)
}
