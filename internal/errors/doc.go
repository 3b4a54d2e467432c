// Package errors provides the structured error handling used across scox.
//
// It provides:
//   - Structured errors with codes, messages, and metadata
//   - Error context preservation through wrapping
//   - Validation error helpers
//   - Type-safe error checking
//   - Process exit-status mapping for the CLI
//
// # Basic Usage
//
// Creating errors:
//
//	err := errors.NotFound("archetype not found")
//	err := errors.InvalidArgumentf("invalid team size: %d", size)
//
// Adding metadata:
//
//	err := errors.TeamBalancef("slot exhausted retry budget").
//	    WithMeta("faction", faction).
//	    WithMeta("slot", slot)
//
// Wrapping errors:
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to get team")
//	}
//
// # Error Checking
//
//	if errors.IsTeamBalance(err) {
//	    // infeasible request, not an environment problem
//	}
//
// # Exit Statuses
//
// The CLI exits with errors.ExitStatus(err) so scripted callers can tell
// catalog authoring bugs, allocation deadlocks, and infeasible team
// requests apart from plain I/O failures.
//
// # Layer-Specific Guidelines
//
// Catalog: return CatalogIntegrity errors at load time, never at point of
// use. Allocator: return AllocationDeadlock with the archetype id in
// metadata. Balancer: return TeamBalance with faction and slot index.
// Repositories: return NotFound/AlreadyExists with record IDs in metadata
// and wrap redis errors with context.
package errors
