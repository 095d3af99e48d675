package demo

// Package demo contains the Fyne-based gallery application showing every
// progress indicator variant. It wires the showcase controls and the
// simulated transfer list to the public widgets, persists gallery choices
// through Preferences, and exports PNG snapshots of the canvas.
