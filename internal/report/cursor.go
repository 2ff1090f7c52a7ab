package report

// Geometry is the fixed page layout the cursor paginates against.
type Geometry struct {
	PageW  float64 // mm
	PageH  float64 // mm
	Margin float64 // mm
}

func (g Geometry) ContentWidth() float64 {
	return g.PageW - 2*g.Margin
}

// SafeBottom is the lowest Y a content block may extend to.
func (g Geometry) SafeBottom() float64 {
	return g.PageH - g.Margin
}

// ContentHeight is the vertical room available for content per page.
func (g Geometry) ContentHeight() float64 {
	return g.SafeBottom() - g.Margin
}

// FooterY is the baseline of the footer stamp.
func (g Geometry) FooterY() float64 {
	return g.PageH - 15
}

// TextMeasurer wraps text at a given width using the emitter's font metrics.
// Renderers depend on this interface so layout stays backend-independent.
type TextMeasurer interface {
	Split(text string, width float64) ([]string, error)
}

// Cursor owns the current page and the vertical write position on it.
// Exactly one cursor exists per document build; renderers advance it but
// never fork it. Overflow is decided before a block is drawn: once a page
// is finalized no command can be moved off it.
type Cursor struct {
	geo    Geometry
	footer func(*Page)
	pages  []*Page
	y      float64
}

// NewCursor opens page one at the top margin. The footer stamp is applied
// exactly once to every page as it is finalized.
func NewCursor(geo Geometry, footer func(*Page)) *Cursor {
	c := &Cursor{geo: geo, footer: footer}
	c.open()
	return c
}

func (c *Cursor) open() {
	c.pages = append(c.pages, &Page{Index: len(c.pages)})
	c.y = c.geo.Margin
}

func (c *Cursor) finalize() {
	if c.footer != nil {
		c.footer(c.pages[len(c.pages)-1])
	}
}

func (c *Cursor) Geometry() Geometry {
	return c.geo
}

// Y is the current vertical write position.
func (c *Cursor) Y() float64 {
	return c.y
}

// MoveTo jumps the write position; used by fixed-layout sections.
func (c *Cursor) MoveTo(y float64) {
	c.y = y
}

// Advance moves the write position down by dy.
func (c *Cursor) Advance(dy float64) {
	c.y += dy
}

// Add appends commands to the page currently being composed.
func (c *Cursor) Add(cmds ...Command) {
	p := c.pages[len(c.pages)-1]
	p.Commands = append(p.Commands, cmds...)
}

// Fits reports whether a block of height h stays above the safe bottom.
func (c *Cursor) Fits(h float64) bool {
	return c.y+h <= c.geo.SafeBottom()
}

// EnsureRoom breaks to a fresh page unless a block of height h fits.
// Returns true when a break happened.
func (c *Cursor) EnsureRoom(h float64) bool {
	if c.Fits(h) {
		return false
	}
	c.Break()
	return true
}

// Break finalizes the current page unconditionally and opens a fresh one
// at the top margin.
func (c *Cursor) Break() {
	c.finalize()
	c.open()
}

// PageCount reports the number of pages opened so far.
func (c *Cursor) PageCount() int {
	return len(c.pages)
}

// Close finalizes the last page and returns the full page sequence.
func (c *Cursor) Close() []Page {
	c.finalize()
	out := make([]Page, len(c.pages))
	for i, p := range c.pages {
		out[i] = *p
	}
	return out
}
