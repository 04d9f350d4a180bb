// Package editor provides the Bubble Tea view of a quill document.
//
// The package owns the caret, scrolling, the incremental search prompt, the
// save-as prompt and the status and message bars. Edits and caret movement
// are delegated to the buffer package; syntax and search-match spans come
// from the highlight package and are merged per visible line at render time.
package editor
