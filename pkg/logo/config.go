package logo

import (
	"github.com/kimjansheden/logo/pkg/edge"
	"github.com/kimjansheden/logo/pkg/errors"
)

// Fixed markup values.
const (
	DefaultHref        = "https://kimjansheden.se"
	DefaultImageSrc    = "https://kimjansheden.se/images/logo.png"
	DefaultImageAlt    = "Kim Jansheden Logo"
	DefaultAriaLabel   = "Webbsidan är skapad av Kim Jansheden"
	DefaultTooltipText = "Denna sida är skapad av Kim Jansheden. Vill du göra/ha din egen hemsida " +
		"till dig eller ditt företag? Klicka här för att kontakta Kim Jansheden"

	// LinkTarget and LinkRel open the site in a new tab without giving it a
	// handle on the opener.
	LinkTarget = "_blank"
	LinkRel    = "noopener noreferrer"

	// DefaultSideTolerance is the horizontal tolerance the widget applies.
	// It is wider than edge.DefaultSideTolerance so left-8/right-8 still count
	// as pinned to the edge.
	DefaultSideTolerance = 8
)

// Class sets applied by the widget regardless of input.
var (
	// ContainerBase is always present on the wrapper.
	ContainerBase = []string{"group", "inline-block"}

	// ContainerFallback is added when no container token was supplied, so the
	// tooltip has a positioned ancestor.
	ContainerFallback = []string{"relative"}

	// DefaultImageSize applies when the caller supplied no subject tokens.
	DefaultImageSize = []string{"h-6", "w-6", "sm:h-8", "sm:w-8"}

	// ImageInteraction gives the image its hover feedback.
	ImageInteraction = []string{
		"cursor-pointer",
		"transition-all",
		"duration-300",
		"will-change-transform",
		"hover:scale-110",
		"hover:drop-shadow-[0_0_0.5em_#646cffaa]",
	}

	// TooltipBase keeps the tooltip out of the hit-test path and above
	// surrounding content.
	TooltipBase = []string{"pointer-events-none", "absolute", "z-50"}

	// TooltipAppearance is the tooltip's look and its hover reveal.
	TooltipAppearance = []string{
		"whitespace-normal",
		"rounded",
		"bg-black/80",
		"px-3",
		"py-2",
		"text-center",
		"text-xs",
		"text-white",
		"shadow-lg",
		"opacity-0",
		"transition-all",
		"duration-300",
		"group-hover:opacity-100",
		"max-w-[250px]",
		"sm:max-w-xs",
	}
)

// Config holds the widget's fixed strings and edge tolerances.
type Config struct {
	Href        string          `json:"href" toml:"href" yaml:"href"`
	ImageSrc    string          `json:"image_src" toml:"image_src" yaml:"image_src"`
	ImageAlt    string          `json:"image_alt" toml:"image_alt" yaml:"image_alt"`
	AriaLabel   string          `json:"aria_label" toml:"aria_label" yaml:"aria_label"`
	TooltipText string          `json:"tooltip_text" toml:"tooltip_text" yaml:"tooltip_text"`
	Tolerances  edge.Tolerances `json:"tolerances" toml:"tolerances" yaml:"tolerances"`
}

// DefaultConfig returns the configuration the widget ships with.
func DefaultConfig() Config {
	return Config{
		Href:        DefaultHref,
		ImageSrc:    DefaultImageSrc,
		ImageAlt:    DefaultImageAlt,
		AriaLabel:   DefaultAriaLabel,
		TooltipText: DefaultTooltipText,
		Tolerances: edge.Tolerances{
			Bottom: edge.DefaultBottomTolerance,
			Left:   DefaultSideTolerance,
			Right:  DefaultSideTolerance,
		},
	}
}

// Validate reports configuration values the widget cannot render sensibly.
func (c Config) Validate() error {
	if err := errors.ValidateURL(c.Href); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "href")
	}
	if err := errors.ValidateURL(c.ImageSrc); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "image_src")
	}
	t := c.Tolerances
	if t.Bottom < 0 || t.Left < 0 || t.Right < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "tolerances must not be negative: %+v", t)
	}
	return nil
}
