// Package domain contains the core domain entities and value objects for
// feedship.
//
// This package represents the innermost layer of the application. It has
// no dependencies on infrastructure concerns (HTTP, git, file system,
// logging) and contains only pure business logic.
//
// # Entities
//
//   - [Article]: A single scraped article (title, link, summary, date)
//   - [Journal]: A journal listing page and its filtering terms
//   - [Report]: The outcome of a single publish run
//
// # Design Principles
//
// Domain entities are:
//   - Immutable after construction (where practical)
//   - Free of infrastructure dependencies
//   - Testable without mocks or external systems
package domain
