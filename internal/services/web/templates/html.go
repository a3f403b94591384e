package templates

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
)

// htmlWriter accumulates the first write error so component bodies can emit
// markup without checking every call.
type htmlWriter struct {
	ctx context.Context
	w   io.Writer
	err error
}

func newHTMLWriter(ctx context.Context, w io.Writer) *htmlWriter {
	return &htmlWriter{ctx: ctx, w: w}
}

// component wraps a markup function as a templ component.
func component(fn func(h *htmlWriter)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(ctx, w)
		fn(h)
		return h.err
	})
}

// raw writes trusted markup.
func (h *htmlWriter) raw(markup string) {
	if h.err != nil {
		return
	}
	_, h.err = io.WriteString(h.w, markup)
}

// text writes escaped text.
func (h *htmlWriter) text(value string) {
	h.raw(templ.EscapeString(value))
}

func (h *htmlWriter) int(value int) {
	h.raw(strconv.Itoa(value))
}

// attr writes ` name="value"` with the value escaped.
func (h *htmlWriter) attr(name, value string) {
	h.raw(" " + name + `="`)
	h.text(value)
	h.raw(`"`)
}

// href writes a sanitized href attribute.
func (h *htmlWriter) href(url string) {
	h.attr("href", string(templ.URL(url)))
}

func (h *htmlWriter) boolAttr(name string, on bool) {
	if on {
		h.raw(" " + name)
	}
}

func (h *htmlWriter) render(c templ.Component) {
	if h.err != nil || c == nil {
		return
	}
	h.err = c.Render(h.ctx, h.w)
}

// children renders the children attached to the context.
func (h *htmlWriter) children() {
	h.render(templ.GetChildren(h.ctx))
}

// element writes <tag class="...">text</tag>.
func (h *htmlWriter) element(tag, class, value string) {
	h.raw("<" + tag)
	if class != "" {
		h.attr("class", class)
	}
	h.raw(">")
	h.text(value)
	h.raw("</" + tag + ">")
}
