// Package progress provides linear and circular progress indicators for
// Fyne applications, rendered on a pixel-density-aware raster surface.
//
// Both widgets support determinate, buffered (linear only), indeterminate
// and wavy presentations. Value changes animate toward their target; the
// final step into the maximum eases with a gentler settle curve and fires
// the widget's completion callback exactly once. All methods follow the
// usual Fyne threading rule: call them on the UI goroutine, or through
// fyne.Do from anywhere else.
package progress
