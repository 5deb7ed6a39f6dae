package metadata

// GridPosition is a 5x5 screen zone. Horizontal runs from far-left (-2) to
// far-right (2), vertical from top (-2) to bottom (2).
type GridPosition struct {
	Horizontal int `json:"horizontal"`
	Vertical   int `json:"vertical"`
}

// VisualElement is one on-screen object. Which label fields are populated
// depends on the category the element was collected under.
type VisualElement struct {
	IsDisplayed bool          `json:"is_displayed"`
	Position    *GridPosition `json:"position,omitempty"`

	Alt     string `json:"alt,omitempty"`
	Text    string `json:"text,omitempty"`
	BgColor string `json:"bg-color,omitempty"`
	Desc    string `json:"desc,omitempty"`
	Type    string `json:"type,omitempty"`
	Title   string `json:"title,omitempty"`
	IsVideo bool   `json:"is_video,omitempty"`
}

// Document is the per-page record produced by the inspector. It is treated
// as immutable once loaded.
type Document struct {
	Desc   string `json:"desc,omitempty"`
	Text   string `json:"text,omitempty"`
	Navbar string `json:"navbar,omitempty"`

	Images  []VisualElement `json:"images,omitempty"`
	Buttons []VisualElement `json:"buttons,omitempty"`
	Inputs  []VisualElement `json:"inputs,omitempty"`
	Iframes []VisualElement `json:"iframes,omitempty"`
}
