package geom

// Package geom provides the stateless math used by the progress renderers:
// power-smoothed wave displacement, amplitude enveloping at path ends,
// CSS-style cubic-bezier timing curves, and circle sampling helpers.
