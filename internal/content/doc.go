// Package content loads the lesson catalog: modules made of theory topics and
// coding problems, stored as one YAML file per module.
//
// A catalog directory looks like:
//
//	modules/
//	├── catalog.yaml   (optional: display order)
//	├── arrays.yaml
//	└── strings.yaml
//
// Theory passages and problem descriptions are written in lesson markup and
// parsed by the lessonmark package.
package content
