// Package services implements the driving port interfaces.
// Services contain the core grouping logic and orchestrate
// calls to driven ports (adapters).
//
// The vectorizer, similarity engine and grouper are pure functions over
// in-memory data; only the orchestrator and watcher touch driven ports.
package services
