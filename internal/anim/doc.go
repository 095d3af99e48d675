package anim

// Package anim owns frame scheduling for the progress widgets. A Coordinator
// runs up to three loops per widget (value transition, indeterminate cycle,
// wave oscillation), guaranteeing a single live subscription per kind and
// phase continuity across restarts. Scheduling is abstracted behind the
// Scheduler interface so tests can drive frames by hand.
