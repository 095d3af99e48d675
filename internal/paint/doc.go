package paint

// Package paint renders progress indicator frames. Every draw function takes
// an explicit Frame snapshot and a Palette and fully repaints the surface,
// so painting stays pure with respect to widget state and can be pixel
// tested headlessly.
