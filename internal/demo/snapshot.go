package demo

import (
	"fmt"
	"image"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"time"

	"fyne.io/fyne/v2"
	"github.com/disintegration/imaging"
)

// Snapshot output constants
const (
	SnapshotFilePrefix = "crest-"
	SnapshotTimeFormat = "20060102-150405"
	SnapshotFileExt    = ".png"

	// SnapshotMaxWidth caps saved files; HiDPI captures arrive at device
	// resolution and get downscaled to stay shareable.
	SnapshotMaxWidth = 1600

	DefaultDirPermissions = 0755
)

// Platform commands for revealing files
const (
	MacOSOpenCommand   = "open"
	MacOSSelectFlag    = "-R"
	WindowsOpenCommand = "explorer"
	WindowsSelectFlag  = "/select,"
	LinuxOpenCommand   = "xdg-open"
)

// SaveSnapshot captures the canvas and writes it as a PNG under dir,
// returning the path to the saved file
func SaveSnapshot(c fyne.Canvas, dir string) (string, error) {
	if c == nil {
		return "", fmt.Errorf("no canvas to capture")
	}
	if err := os.MkdirAll(dir, DefaultDirPermissions); err != nil {
		return "", fmt.Errorf("failed to create snapshot directory: %w", err)
	}

	var img image.Image = c.Capture()
	if img.Bounds().Dx() > SnapshotMaxWidth {
		img = imaging.Resize(img, SnapshotMaxWidth, 0, imaging.Lanczos)
	}

	name := SnapshotFilePrefix + time.Now().Format(SnapshotTimeFormat) + SnapshotFileExt
	path := filepath.Join(dir, name)
	if err := imaging.Save(img, path); err != nil {
		return "", fmt.Errorf("failed to save snapshot: %w", err)
	}
	return path, nil
}

// RevealInFileManager opens the system file manager with the file
// selected, or its directory where selection is not supported
func RevealInFileManager(path string) error {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command(MacOSOpenCommand, MacOSSelectFlag, path).Start()
	case "windows":
		return exec.Command(WindowsOpenCommand, WindowsSelectFlag+path).Start()
	default:
		return exec.Command(LinuxOpenCommand, filepath.Dir(path)).Start()
	}
}
