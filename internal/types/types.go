// internal/types/types.go
package types

// EntityID identifies an entity inside the ECS. IDs grow monotonically and are
// never reused within a session, so ordering by ID is stable.
type EntityID uint64
