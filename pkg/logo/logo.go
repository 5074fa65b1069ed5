package logo

import (
	"io"
	"slices"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/kimjansheden/logo/pkg/classes"
	"github.com/kimjansheden/logo/pkg/edge"
	"github.com/kimjansheden/logo/pkg/placement"
)

// Option configures a widget build.
type Option func(*builder)

type builder struct {
	config     Config
	tolerances *edge.Tolerances
	logger     *log.Logger
}

// WithConfig replaces the default configuration.
func WithConfig(c Config) Option { return func(b *builder) { b.config = c } }

// WithTolerances overrides the configured edge tolerances.
func WithTolerances(t edge.Tolerances) Option {
	return func(b *builder) { b.tolerances = &t }
}

// WithLogger logs classification and placement decisions at debug level.
func WithLogger(l *log.Logger) Option { return func(b *builder) { b.logger = l } }

// Widget is a fully resolved logo widget, ready to render.
type Widget struct {
	Config         Config              `json:"config"`
	Classification classes.Result      `json:"classification"`
	Proximity      edge.Proximity      `json:"proximity"`
	Placement      placement.Directive `json:"placement"`

	ContainerClasses []string `json:"container_classes"`
	ImageClasses     []string `json:"image_classes"`
	TooltipClasses   []string `json:"tooltip_classes"`
}

// Build classifies className, resolves the tooltip placement and assembles
// the class lists for the three rendered elements.
func Build(className string, opts ...Option) Widget {
	b := builder{config: DefaultConfig()}
	for _, opt := range opts {
		opt(&b)
	}
	tol := b.config.Tolerances
	if b.tolerances != nil {
		tol = *b.tolerances
	}

	tokens := classes.Tokenize(className)
	result := classes.ClassifyTokens(tokens)
	prox := edge.Detect(tokens, tol)
	dir := placement.Resolve(prox)

	w := Widget{
		Config:           b.config,
		Classification:   result,
		Proximity:        prox,
		Placement:        dir,
		ContainerClasses: containerClasses(result.Container),
		ImageClasses:     imageClasses(result.Subject),
		TooltipClasses:   tooltipClasses(dir),
	}
	w.Config.Tolerances = tol

	if b.logger != nil {
		b.logger.Debugf("Classified %d tokens: %d container, %d subject",
			len(tokens), len(result.Container), len(result.Subject))
		b.logger.Debugf("Edge proximity bottom=%t left=%t right=%t (tolerances %d/%d/%d)",
			prox.Bottom, prox.Left, prox.Right, tol.Bottom, tol.Left, tol.Right)
		b.logger.Debugf("Tooltip placement %s", dir)
	}
	return w
}

func containerClasses(container []string) []string {
	out := slices.Clone(ContainerBase)
	if len(container) == 0 {
		out = append(out, ContainerFallback...)
	}
	return append(out, container...)
}

func imageClasses(subject []string) []string {
	var out []string
	if len(subject) == 0 {
		out = slices.Clone(DefaultImageSize)
	} else {
		out = slices.Clone(subject)
	}
	return append(out, ImageInteraction...)
}

func tooltipClasses(d placement.Directive) []string {
	out := slices.Clone(TooltipBase)
	out = append(out, d.Classes()...)
	return append(out, TooltipAppearance...)
}

// ContainerClass returns the wrapper's class attribute value.
func (w Widget) ContainerClass() string { return strings.Join(w.ContainerClasses, " ") }

// ImageClass returns the image's class attribute value.
func (w Widget) ImageClass() string { return strings.Join(w.ImageClasses, " ") }

// TooltipClass returns the tooltip's class attribute value.
func (w Widget) TooltipClass() string { return strings.Join(w.TooltipClasses, " ") }

// Node builds the widget's element tree:
//
//	<div class="…">
//	  <a href target rel aria-label><img src alt class></a>
//	  <span class="…">tooltip text</span>
//	</div>
func (w Widget) Node() *html.Node {
	img := element(atom.Img,
		attr("src", w.Config.ImageSrc),
		attr("alt", w.Config.ImageAlt),
		attr("class", w.ImageClass()),
	)
	link := element(atom.A,
		attr("href", w.Config.Href),
		attr("target", LinkTarget),
		attr("rel", LinkRel),
		attr("aria-label", w.Config.AriaLabel),
	)
	link.AppendChild(img)

	tooltip := element(atom.Span, attr("class", w.TooltipClass()))
	tooltip.AppendChild(&html.Node{Type: html.TextNode, Data: w.Config.TooltipText})

	root := element(atom.Div, attr("class", w.ContainerClass()))
	root.AppendChild(link)
	root.AppendChild(tooltip)
	return root
}

// Render writes the widget's markup to out.
func (w Widget) Render(out io.Writer) error {
	return html.Render(out, w.Node())
}

// String returns the widget's markup.
func (w Widget) String() string {
	var sb strings.Builder
	_ = w.Render(&sb)
	return sb.String()
}

// Render builds the widget for className and writes its markup to out.
func Render(out io.Writer, className string, opts ...Option) error {
	return Build(className, opts...).Render(out)
}

// RenderString builds the widget for className and returns its markup.
func RenderString(className string, opts ...Option) string {
	return Build(className, opts...).String()
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
		Attr:     attrs,
	}
}

func attr(key, val string) html.Attribute {
	return html.Attribute{Key: key, Val: val}
}
