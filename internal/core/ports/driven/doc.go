// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - CorpusSource: Lists tiers and loads a tier's documents
//   - Normaliser: Extracts visible text from one markup format
//   - NormaliserRegistry: Selects the appropriate normaliser
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
//   - TreeWatcher: Reports filesystem changes. Only the watch mode needs it.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter, connector, or normaliser package
package driven
