// Package classes splits a caller-supplied class string into utility tokens and
// decides which of them belong on the widget's outer container and which on
// the inner image.
//
// # Categories
//
// Each token is tested against an ordered rule list; the first rule that
// matches decides its [Category]:
//
//   - [Positioning]: fixed, absolute, relative, static, sticky
//   - [Offset]: top-*, bottom-*, left-*, right-*, inset-*, z-*
//   - [Display]: inline-block, flex, block, hidden, grid, ... (optionally
//     responsive-prefixed, e.g. "md:block")
//   - [Spacing]: margin, padding and self-alignment utilities (m-*, px-*,
//     self-*, justify-self-*, place-self-*, ...)
//
// Tokens matched by any of these are container tokens. Everything else,
// including unknown or misspelled utilities, is a [Subject] token and lands on
// the image.
//
// # Usage
//
//	r := classes.Classify("fixed bottom-4 right-4 h-16 w-16")
//	// r.Container == []string{"fixed", "bottom-4", "right-4"}
//	// r.Subject   == []string{"h-16", "w-16"}
//
// [Classify] is total: any string, including "", yields a valid [Result].
package classes
