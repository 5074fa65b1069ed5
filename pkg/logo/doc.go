// Package logo renders the signature logo widget: a linked logo image with a
// tooltip that appears when the wrapper is hovered.
//
// # Overview
//
// The caller passes one class string. [Build] splits it with
// [classes.Classify]: layout utilities (positioning, offsets, display,
// spacing) go on the wrapper, everything else on the image. The raw tokens
// also feed [edge.Detect], and [placement.Resolve] turns the result into the
// tooltip's position so it opens away from the edge the widget is pinned to.
//
//	w := logo.Build("fixed bottom-4 right-4 h-10 w-10")
//	w.Placement // above/right
//	fmt.Println(w) // <div class="group inline-block fixed bottom-4 right-4">…
//
// # Markup
//
// The rendered fragment is
//
//	<div class="group inline-block [relative] {container tokens}">
//	  <a href="https://kimjansheden.se" target="_blank" rel="noopener noreferrer"
//	     aria-label="Webbsidan är skapad av Kim Jansheden">
//	    <img src="https://kimjansheden.se/images/logo.png" alt="Kim Jansheden Logo"
//	         class="{subject tokens or h-6 w-6 sm:h-8 sm:w-8} cursor-pointer …">
//	  </a>
//	  <span class="pointer-events-none absolute z-50 {placement} …">…</span>
//	</div>
//
// "relative" is only added when the caller supplied no container token.
// The tooltip is pointer-events-none so it never steals the hover from the
// image.
//
// # Options
//
//   - [WithConfig]: replace the link, image, texts or tolerances
//   - [WithTolerances]: override only the edge tolerances
//   - [WithLogger]: debug-log the classification and placement
//
// Every build is independent; widgets share no state and can be built from
// any number of goroutines.
package logo
