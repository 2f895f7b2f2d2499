// Package assets provides the CSS styles applied to rendered lesson pages.
//
// # Loader Architecture
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - styles compiled into the binary (lesson, print)
//	    ├── FilesystemLoader  - styles from {basePath}/styles/{name}.css
//	    └── AssetResolver     - filesystem first, embedded as fallback
//
// Only "not found" errors fall back to the embedded styles; validation and I/O
// errors from the custom directory are returned as is.
//
// # Security
//
// Style names are validated to prevent path traversal. FilesystemLoader resolves
// symlinks and verifies every path stays within its base directory.
package assets
