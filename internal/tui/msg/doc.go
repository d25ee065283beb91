// Package msg defines the message types used by the TUI's Bubbletea event loop.
//
// Message types are exported so that the container model, its child views
// and the program wiring (config watcher) can produce and handle them without
// importing each other.
package msg
