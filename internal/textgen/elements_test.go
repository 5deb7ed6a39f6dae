package textgen

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nbenliogludev/go-page-brief/internal/metadata"
	"github.com/nbenliogludev/go-page-brief/internal/position"
)

var (
	_ Strategy = Images{}
	_ Strategy = Buttons{}
	_ Strategy = Inputs{}
	_ Strategy = Iframes{}
	_ Strategy = ObjectLocation{}
	_ Strategy = Navbar{}
	_ Strategy = Description{}
	_ Strategy = Content{}
	_ Strategy = Prefix{}
)

func at(h, v int) *metadata.GridPosition {
	return &metadata.GridPosition{Horizontal: h, Vertical: v}
}

func TestImages(t *testing.T) {
	doc := &metadata.Document{Images: []metadata.VisualElement{
		{IsDisplayed: true, Alt: "logo", Position: at(0, 0)},
		{IsDisplayed: false, Alt: "hidden banner", Position: at(0, -2)},
		{IsDisplayed: true, Alt: "  ", Position: at(1, 1)},
		{IsDisplayed: true, Alt: "team photo", Position: at(-2, 2)},
		{IsDisplayed: true, Alt: "spacer"},
	}}

	res, err := Images{}.Generate(doc)
	require.NoError(t, err)
	assert.Equal(t, SectionImages, res.Section)
	assert.Equal(t, []string{
		"an image of logo in the center",
		"an image of team photo in the bottom left corner",
		"an image of spacer",
	}, res.Parts)
}

func TestImagesHiddenNeverAppears(t *testing.T) {
	doc := &metadata.Document{Images: []metadata.VisualElement{
		{IsDisplayed: false, Alt: "logo", Position: at(0, 0)},
		// out of range, but never inspected because it is hidden
		{IsDisplayed: false, Alt: "ghost", Position: at(9, 9)},
	}}
	res, err := Images{}.Generate(doc)
	require.NoError(t, err)
	assert.True(t, res.Empty())
}

func TestButtons(t *testing.T) {
	doc := &metadata.Document{Buttons: []metadata.VisualElement{
		{IsDisplayed: true, Alt: "Search", Text: "Go", BgColor: "blue", Position: at(2, -2)},
		{IsDisplayed: true, Text: "Sign up", BgColor: "green", Position: at(1, 0)},
		{IsDisplayed: true, Text: "Menu", Position: at(-2, -2)},
		{IsDisplayed: true, BgColor: "red", Position: at(0, 0)},
		{IsDisplayed: false, Text: "Secret", BgColor: "black", Position: at(0, 0)},
	}}

	res, err := Buttons{}.Generate(doc)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"a blue colored button of Search in the top right corner",
		"a green colored button of Sign up in the right of center",
		"a button of Menu in the top left corner",
	}, res.Parts)

	res, err = Buttons{NoColor: true}.Generate(doc)
	require.NoError(t, err)
	assert.Equal(t, "a button of Search in the top right corner", res.Parts[0])
}

func TestInputs(t *testing.T) {
	doc := &metadata.Document{Inputs: []metadata.VisualElement{
		{IsDisplayed: true, Desc: "email address", Type: "email", Position: at(0, 1)},
		{IsDisplayed: true, Desc: "csrf token", Type: "hidden", Position: at(0, 0)},
		{IsDisplayed: true, Desc: "tracking", Type: "HIDDEN", Position: at(0, 0)},
		{IsDisplayed: true, Type: "text", Position: at(0, 0)},
		{IsDisplayed: false, Desc: "password", Type: "password", Position: at(0, 0)},
	}}

	res, err := Inputs{}.Generate(doc)
	require.NoError(t, err)
	assert.Equal(t, []string{"an input field of email address in the below and center-left of center"}, res.Parts)
}

func TestIframes(t *testing.T) {
	doc := &metadata.Document{Iframes: []metadata.VisualElement{
		{IsDisplayed: true, Title: "product demo", IsVideo: true, Position: at(-1, -1)},
		{IsDisplayed: true, Title: "map", Position: at(2, 1)},
		{IsDisplayed: true, Position: at(0, 0)},
	}}

	res, err := Iframes{}.Generate(doc)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"a video iframe of product demo in the above and to the left of center",
		"a non-video iframe of map in the right edge and below center",
	}, res.Parts)
}

func TestAbsentCategoriesAreEmpty(t *testing.T) {
	doc := &metadata.Document{}
	for _, s := range []Strategy{Images{}, Buttons{}, Inputs{}, Iframes{}, ObjectLocation{}} {
		res, err := s.Generate(doc)
		require.NoError(t, err, s.Name())
		assert.True(t, res.Empty(), s.Name())
	}
}

func TestOutOfRangePositionFails(t *testing.T) {
	doc := &metadata.Document{Buttons: []metadata.VisualElement{
		{IsDisplayed: true, Text: "ok", Position: at(0, 0)},
		{IsDisplayed: true, Text: "bad", Position: at(3, 0)},
	}}

	_, err := Buttons{}.Generate(doc)
	require.Error(t, err)

	var rangeErr *position.RangeError
	require.True(t, errors.As(err, &rangeErr))
	assert.Equal(t, 3, rangeErr.Horizontal)
	assert.Contains(t, err.Error(), "buttons[1]")
}

func TestObjectLocation(t *testing.T) {
	doc := &metadata.Document{
		Images:  []metadata.VisualElement{{IsDisplayed: true, Alt: "logo", Position: at(-2, -2)}},
		Buttons: []metadata.VisualElement{{IsDisplayed: true, Text: "Buy", BgColor: "red", Position: at(0, 2)}},
	}

	res, err := ObjectLocation{}.Generate(doc)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"an image of logo in the top left corner",
		"a button of Buy in the bottom center",
	}, res.Parts)
}
