package transfer

// Package transfer implements the simulated transfer backend of the demo
// gallery. It manages task lifecycle, concurrency limits and progress
// telemetry so the gallery's indicator rows have realistic values to render:
// reception runs ahead of verification, links occasionally drop and retry,
// and completed tasks report through an update callback.
