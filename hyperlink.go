package quill

import "github.com/quillui/quill/paint"

// Link is text that looks like a hyperlink: colored and underlined.
// It carries no URL; see Hyperlink for that.
type Link struct {
	Text string
}

// NewLink returns link-styled text.
func NewLink(text string) Link {
	return Link{Text: text}
}

// Show implements Widget.
func (l Link) Show(ui *Ui) Response {
	color := ui.Style().HyperlinkColor
	underline := paint.NewStroke(1, color)

	return NewLabel(l.Text).
		WithColor(color).
		WithUnderline(underline).
		Show(ui)
}

// Hyperlink is a link to a URL. Painting it does not open anything; the
// embedder calls Open (or Context.OpenURL directly) when it decides the
// link was activated.
type Hyperlink struct {
	URL  string
	Text string

	// NewTab asks for the link to open in a new browser tab.
	NewTab bool
}

// NewHyperlink returns a hyperlink whose text is the URL itself.
func NewHyperlink(url string) Hyperlink {
	return Hyperlink{URL: url, Text: url}
}

// HyperlinkFromLabelAndURL returns a hyperlink with its own text.
func HyperlinkFromLabelAndURL(text, url string) Hyperlink {
	return Hyperlink{URL: url, Text: text}
}

// OpenInNewTab returns the hyperlink set to open in a new browser tab.
func (h Hyperlink) OpenInNewTab(newTab bool) Hyperlink {
	h.NewTab = newTab
	return h
}

// Show implements Widget.
func (h Hyperlink) Show(ui *Ui) Response {
	resp := NewLink(h.Text).Show(ui)
	resp.ID = ui.ID().With(h.URL)
	return resp
}

// Open requests opening this hyperlink's URL through the context's
// handler.
func (h Hyperlink) Open(ctx *Context) {
	ctx.OpenURL(OpenURL{URL: h.URL, NewTab: h.NewTab})
}
