// Package process manages the process groups of child processes started by
// lessonmark: the headless browser used for handouts and the node runtime that
// executes learner code. Both may spawn children that must not outlive a
// timeout or a closed renderer.
package process
