// Package ports defines the interfaces (ports) that connect the
// application layer to infrastructure adapters.
//
// In Clean Architecture / Hexagonal Architecture, ports are the
// boundaries between the application core and the outside world. They
// define what the application needs from external systems without
// specifying how those needs are fulfilled.
//
// # Port Interfaces
//
//   - [Generator]: Produces the artifact file (built-in scraper or
//     external command)
//   - [Repository]: Version-control operations (stage, diff, commit, push)
//   - [PageFetcher]: Retrieves HTML listing pages
//   - [HTTPClient]: HTTP request abstraction for dependency injection
//   - [Logger]: Structured logging abstraction
//
// # Usage
//
// The application layer (internal/app, internal/feed) depends only on
// these interfaces. Infrastructure adapters (internal/adapters) implement
// them with concrete implementations (git subprocess, HTTP, zerolog).
//
// This separation enables:
//   - Testing application logic with mock implementations
//   - Swapping infrastructure without changing business logic
//   - Clear boundaries and dependency direction
package ports
