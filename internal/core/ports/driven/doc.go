// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - ContentProvider: Lists an account's recent posts and comments
//   - PersonaStore: Writes the final persona document
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
//   - LLMService: Text generation. Without it, synthesis cannot run and the
//     CLI reports ErrLLMUnavailable before collecting anything.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
