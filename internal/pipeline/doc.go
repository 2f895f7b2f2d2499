// Package pipeline implements the HTML stages of lesson rendering.
//
// This package handles the stages that surround the block tree:
//   - Passage preprocessing (byte order mark, line endings)
//   - Rendering goldmark document trees to HTML (tables included)
//   - Assembly of rendered sections into one HTML5 document
//   - CSS injection into HTML documents
//
// Parsing the lesson dialect lives in the root lessonmark package, which builds
// the goldmark tree node by node; no markdown text is re-parsed. PDF generation
// is handled by the root package using headless Chrome (go-rod).
package pipeline
