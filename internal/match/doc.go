// Package match holds the scoreboard's internal match model and storage.
//
// The package is internal so external callers can only observe matches through
// the snapshot copies the scoreboard hands out; nothing outside the module can
// reach the live storage.
//
// Conventions:
//   - Timestamps: int64 microseconds since Unix epoch
//   - IDs: uuid.UUID, generated at creation
package match
