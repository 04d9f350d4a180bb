// Package buffer implements the grapheme-accurate document model for quill.
//
// A Buffer is an ordered list of Lines. Locations are 0-based
// (LineIdx, GraphemeIdx) pairs; GraphemeIdx may equal the line's grapheme
// count, which addresses the end-of-line caret position. Out-of-range
// locations are clamped or ignored, never reported as errors.
package buffer
