package sentence

import (
	"fmt"
	"net/url"
	"strings"
)

// DefaultLookupBaseURL is the kanji reference the renderer links to.
const DefaultLookupBaseURL = "https://jisho.org/search"

// Renderer flattens grouped nodes into HTML. LinkKanji controls
// whether kanji without a furigana reading become lookup links;
// inside a ruby annotation the glyphs are always plain. Escaping of
// surrounding plain text is the embedding layer's concern.
type Renderer struct {
	LookupBaseURL string
	LinkKanji     bool
}

// NewRenderer returns a linking renderer against baseURL, or the
// default reference when baseURL is empty.
func NewRenderer(baseURL string) *Renderer {
	if baseURL == "" {
		baseURL = DefaultLookupBaseURL
	}
	return &Renderer{LookupBaseURL: baseURL, LinkKanji: true}
}

// RenderText runs the whole pipeline over annotated text.
func (r *Renderer) RenderText(text string) string {
	return r.Render(Group(Tokenize(text)))
}

// Render concatenates the per-node markup.
func (r *Renderer) Render(nodes []Node) string {
	var b strings.Builder
	for _, n := range nodes {
		switch n.Kind {
		case NodePlainRun:
			b.WriteString(n.Text)
		case NodeKanjiRun:
			b.WriteString(r.renderKanjiRun(n))
		case NodeSpace:
			b.WriteString("&nbsp;")
		}
	}
	return b.String()
}

func (r *Renderer) renderKanjiRun(n Node) string {
	var glyphs strings.Builder
	link := r.LinkKanji && !n.HasFurigana
	for _, k := range n.Kanji {
		if link {
			fmt.Fprintf(&glyphs, `<a href="%s">%c</a>`, r.LookupURL(k), k)
		} else {
			glyphs.WriteRune(k)
		}
	}
	if n.HasFurigana {
		return fmt.Sprintf("<ruby>%s<rt>%s</rt></ruby>", glyphs.String(), n.Furigana)
	}
	return glyphs.String()
}

// LookupURL returns the reference-lookup address for one kanji.
func (r *Renderer) LookupURL(k rune) string {
	return fmt.Sprintf("%s/%s%%20%%23kanji", r.LookupBaseURL, url.PathEscape(string(k)))
}
