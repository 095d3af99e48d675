package demo

import (
	"log"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"

	"github.com/crestui/crest/progress"
)

// Settings keys for Fyne preferences
const (
	KeyIndicatorShape   = "indicator_shape"
	KeyThicknessName    = "indicator_thickness"
	KeyCircularDiameter = "circular_diameter"
	KeyMaxParallel      = "max_parallel_transfers"
	KeySnapshotDir      = "snapshot_directory"
)

// Thickness option names
const (
	ThicknessThin  = "thin"
	ThicknessThick = "thick"
)

// Default values and bounds
const (
	DefaultShape         = progress.ShapeFlat
	DefaultThicknessName = ThicknessThin

	DefaultDiameter float32 = 48
	MinDiameter     float32 = 24
	MaxDiameter     float32 = 240

	DefaultMaxParallel = 2
	MinParallel        = 1
	MaxParallelLimit   = 10

	DefaultSnapshotSubdir = "crest"
	FallbackSnapshotDir   = "/tmp/crest-snapshots"
)

// Settings manages gallery configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetIndicatorShape returns the persisted indicator shape, healing
// unknown stored values back to the default
func (s *Settings) GetIndicatorShape() progress.Shape {
	stored := progress.Shape(s.app.Preferences().String(KeyIndicatorShape))
	for _, opt := range s.GetShapeOptions() {
		if stored == opt {
			return stored
		}
	}
	s.SetIndicatorShape(DefaultShape)
	return DefaultShape
}

// SetIndicatorShape stores the indicator shape
func (s *Settings) SetIndicatorShape(shape progress.Shape) {
	valid := false
	for _, opt := range s.GetShapeOptions() {
		if shape == opt {
			valid = true
			break
		}
	}
	if !valid {
		shape = DefaultShape
	}
	s.app.Preferences().SetString(KeyIndicatorShape, string(shape))
}

// GetShapeOptions returns the available indicator shapes
func (s *Settings) GetShapeOptions() []progress.Shape {
	return []progress.Shape{progress.ShapeFlat, progress.ShapeWavy}
}

// GetThicknessName returns the persisted thickness option name
func (s *Settings) GetThicknessName() string {
	stored := s.app.Preferences().String(KeyThicknessName)
	for _, opt := range s.GetThicknessOptions() {
		if stored == opt {
			return stored
		}
	}
	s.SetThicknessName(DefaultThicknessName)
	return DefaultThicknessName
}

// SetThicknessName stores the thickness option name
func (s *Settings) SetThicknessName(name string) {
	valid := false
	for _, opt := range s.GetThicknessOptions() {
		if name == opt {
			valid = true
			break
		}
	}
	if !valid {
		name = DefaultThicknessName
	}
	s.app.Preferences().SetString(KeyThicknessName, name)
}

// GetThicknessOptions returns the available thickness option names
func (s *Settings) GetThicknessOptions() []string {
	return []string{ThicknessThin, ThicknessThick}
}

// GetIndicatorThickness maps the persisted option name to track metrics
func (s *Settings) GetIndicatorThickness() progress.Thickness {
	if s.GetThicknessName() == ThicknessThick {
		return progress.Thick()
	}
	return progress.Thin()
}

// GetCircularDiameter returns the persisted dial diameter
func (s *Settings) GetCircularDiameter() float32 {
	d := s.app.Preferences().Float(KeyCircularDiameter)
	if d == 0 {
		s.SetCircularDiameter(DefaultDiameter)
		return DefaultDiameter
	}
	return clampDiameter(float32(d))
}

// SetCircularDiameter stores the dial diameter, clamped to sane bounds
func (s *Settings) SetCircularDiameter(d float32) {
	s.app.Preferences().SetFloat(KeyCircularDiameter, float64(clampDiameter(d)))
}

func clampDiameter(d float32) float32 {
	if d < MinDiameter {
		return MinDiameter
	}
	if d > MaxDiameter {
		return MaxDiameter
	}
	return d
}

// GetMaxParallelTransfers returns the max parallel transfers setting
func (s *Settings) GetMaxParallelTransfers() int {
	maxParallel := s.app.Preferences().Int(KeyMaxParallel)
	if maxParallel == 0 {
		s.SetMaxParallelTransfers(DefaultMaxParallel)
		return DefaultMaxParallel
	}
	if maxParallel < MinParallel {
		return MinParallel
	}
	if maxParallel > MaxParallelLimit {
		return MaxParallelLimit
	}
	return maxParallel
}

// SetMaxParallelTransfers sets the max parallel transfers setting
func (s *Settings) SetMaxParallelTransfers(maxParallel int) {
	if maxParallel < MinParallel {
		maxParallel = MinParallel
	}
	if maxParallel > MaxParallelLimit {
		maxParallel = MaxParallelLimit
	}
	s.app.Preferences().SetInt(KeyMaxParallel, maxParallel)
}

// GetSnapshotDirectory returns the snapshot output directory
func (s *Settings) GetSnapshotDirectory() string {
	dir := s.app.Preferences().String(KeySnapshotDir)
	if dir == "" {
		defaultDir, err := getDefaultSnapshotDir()
		if err != nil {
			log.Printf("Warning: Could not resolve home directory: %v", err)
			defaultDir = FallbackSnapshotDir
		}
		s.SetSnapshotDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetSnapshotDirectory sets the snapshot output directory
func (s *Settings) SetSnapshotDirectory(dir string) {
	s.app.Preferences().SetString(KeySnapshotDir, dir)
}

func getDefaultSnapshotDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, "Pictures", DefaultSnapshotSubdir), nil
}
