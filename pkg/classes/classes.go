package classes

import (
	"fmt"
	"slices"
	"strings"
)

// Category identifies the rule a token matched.
type Category int

const (
	Subject Category = iota
	Positioning
	Offset
	Display
	Spacing
)

var categoryNames = map[Category]string{
	Subject:     "subject",
	Positioning: "positioning",
	Offset:      "offset",
	Display:     "display",
	Spacing:     "spacing",
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return "unknown"
}

// MarshalText encodes the category by name.
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText decodes a category name written by MarshalText.
func (c *Category) UnmarshalText(text []byte) error {
	for cat, name := range categoryNames {
		if name == string(text) {
			*c = cat
			return nil
		}
	}
	return fmt.Errorf("unknown category %q", text)
}

// IsContainer reports whether tokens of this category go on the outer wrapper.
func (c Category) IsContainer() bool {
	return c != Subject
}

// ResponsivePrefixes are the breakpoint variants accepted in front of display
// utilities and numeric offsets.
var ResponsivePrefixes = []string{"sm:", "md:", "lg:", "xl:", "2xl:"}

var (
	positioningKeywords = []string{"fixed", "absolute", "relative", "static", "sticky"}
	offsetPrefixes      = []string{"top-", "bottom-", "left-", "right-", "inset-", "z-"}
	displayKeywords     = []string{
		"inline-block", "inline-flex", "flex", "block", "inline",
		"hidden", "grid", "table", "contents", "flow-root",
	}
	spacingPrefixes = []string{
		"mt-", "mb-", "ml-", "mr-", "mx-", "my-", "m-",
		"pt-", "pb-", "pl-", "pr-", "px-", "py-", "p-",
		"self-", "justify-self-", "place-self-",
	}
)

// rule pairs a predicate with the category it assigns.
type rule struct {
	match    func(string) bool
	category Category
}

// rules is evaluated in order; the first match wins.
var rules = []rule{
	{func(t string) bool { return slices.Contains(positioningKeywords, t) }, Positioning},
	{func(t string) bool { return hasAnyPrefix(t, offsetPrefixes) }, Offset},
	{func(t string) bool { return slices.Contains(displayKeywords, TrimResponsive(t)) }, Display},
	{func(t string) bool { return hasAnyPrefix(t, spacingPrefixes) }, Spacing},
}

// Result is a partition of the input tokens. Every token appears in exactly
// one of the two slices, in input order.
type Result struct {
	Container []string `json:"container"`
	Subject   []string `json:"subject"`
}

// Token is a single class token with the category it was assigned.
type Token struct {
	Value    string   `json:"value"`
	Category Category `json:"category"`
}

// Len returns the total number of classified tokens.
func (r Result) Len() int {
	return len(r.Container) + len(r.Subject)
}

// Tokenize splits s on runs of whitespace and drops empty tokens.
func Tokenize(s string) []string {
	return strings.Fields(s)
}

// CategoryOf returns the category of a single token.
func CategoryOf(token string) Category {
	for _, r := range rules {
		if r.match(token) {
			return r.category
		}
	}
	return Subject
}

// Classify tokenizes s and partitions the tokens into container and subject
// tokens.
func Classify(s string) Result {
	return ClassifyTokens(Tokenize(s))
}

// ClassifyTokens partitions already tokenized input.
func ClassifyTokens(tokens []string) Result {
	var r Result
	for _, t := range tokens {
		if CategoryOf(t).IsContainer() {
			r.Container = append(r.Container, t)
		} else {
			r.Subject = append(r.Subject, t)
		}
	}
	return r
}

// Explain tokenizes s and reports the category of every token, in order.
func Explain(s string) []Token {
	tokens := Tokenize(s)
	out := make([]Token, len(tokens))
	for i, t := range tokens {
		out[i] = Token{Value: t, Category: CategoryOf(t)}
	}
	return out
}

// TrimResponsive strips a single leading breakpoint prefix such as "md:".
func TrimResponsive(token string) string {
	for _, p := range ResponsivePrefixes {
		if rest, ok := strings.CutPrefix(token, p); ok {
			return rest
		}
	}
	return token
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
