// Package annotated implements text with labeled byte spans.
//
// Spans are half-open byte ranges [Start, End). A String keeps its spans valid
// across Replace calls and flattens them into non-overlapping Parts for
// rendering.
package annotated
