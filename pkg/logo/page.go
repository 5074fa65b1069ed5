package logo

import (
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/kimjansheden/logo/pkg/classes"
)

// TailwindScript is the Play CDN build used by preview pages to compile the
// widget's utility classes in the browser.
const TailwindScript = "https://cdn.tailwindcss.com"

// Report is the inspectable result of a build.
type Report struct {
	Input  string          `json:"input"`
	Tokens []classes.Token `json:"tokens"`
	Widget Widget          `json:"widget"`
}

// Inspect builds the widget for className and records how each token was
// categorized.
func Inspect(className string, opts ...Option) Report {
	return Report{
		Input:  className,
		Tokens: classes.Explain(className),
		Widget: Build(className, opts...),
	}
}

// RenderPage writes a standalone HTML document showing the widget. The page
// loads Tailwind from the CDN so the utility classes take effect without a
// build step.
func (w Widget) RenderPage(out io.Writer, title string) error {
	if _, err := io.WriteString(out, "<!DOCTYPE html>\n"); err != nil {
		return err
	}
	return html.Render(out, w.page(title))
}

func (w Widget) page(title string) *html.Node {
	head := element(atom.Head)
	head.AppendChild(element(atom.Meta, attr("charset", "utf-8")))
	head.AppendChild(element(atom.Meta,
		attr("name", "viewport"),
		attr("content", "width=device-width, initial-scale=1"),
	))
	t := element(atom.Title)
	t.AppendChild(&html.Node{Type: html.TextNode, Data: title})
	head.AppendChild(t)
	head.AppendChild(element(atom.Script, attr("src", TailwindScript)))

	body := element(atom.Body, attr("class", "min-h-screen bg-slate-100 p-8"))
	body.AppendChild(w.Node())

	doc := element(atom.Html, attr("lang", "sv"))
	doc.AppendChild(head)
	doc.AppendChild(body)
	return doc
}
