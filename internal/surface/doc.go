package surface

// Package surface owns the pixel buffer a progress indicator draws into.
// The buffer lives at device-pixel resolution while every drawing call takes
// logical coordinates; the scale factor between the two is recomputed from
// scratch on each resize. A debounced width watcher coalesces host resize
// bursts into single dimension recomputes.
