// Package pkg provides the libraries behind the logo widget.
//
// # Overview
//
// The widget is a linked logo image with a hover tooltip. Callers style it
// with one Tailwind class string; the libraries split that string between
// the widget's elements and keep the tooltip on screen. The pkg directory is
// organized into these areas:
//
//  1. [classes] - Token classification (container vs. image)
//  2. [edge] - Screen edge proximity from offset utilities
//  3. [placement] - Tooltip side and alignment
//  4. [logo] - Composition and HTML rendering
//  5. [config] - TOML/YAML configuration files
//  6. [errors], [observability], [buildinfo] - Shared infrastructure
//
// # Architecture
//
// The data flow for one widget:
//
//	class string
//	     ↓
//	[classes] package (container tokens | subject tokens)
//	     ↓
//	[edge] package (bottom/left/right proximity)
//	     ↓
//	[placement] package (above/below, left/right/center)
//	     ↓
//	[logo] package (class sets + markup)
//
// # Quick Start
//
//	import "github.com/kimjansheden/logo/pkg/logo"
//
//	html := logo.RenderString("fixed bottom-4 right-4 h-10 w-10")
//
// Every step is a pure function of its input, so widgets can be built
// concurrently without coordination.
package pkg
