package demo

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/crestui/crest/progress"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestIndicatorShape(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if shape := settings.GetIndicatorShape(); shape != DefaultShape {
		t.Errorf("Expected default shape %s, got %s", DefaultShape, shape)
	}

	// Test setting custom value
	settings.SetIndicatorShape(progress.ShapeWavy)
	if shape := settings.GetIndicatorShape(); shape != progress.ShapeWavy {
		t.Errorf("Expected shape %s, got %s", progress.ShapeWavy, shape)
	}

	// Unknown values should heal back to the default
	settings.SetIndicatorShape(progress.Shape("squiggle"))
	if shape := settings.GetIndicatorShape(); shape != DefaultShape {
		t.Errorf("Expected healed shape %s, got %s", DefaultShape, shape)
	}
}

func TestIndicatorShapeHealsStoredGarbage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	app.Preferences().SetString(KeyIndicatorShape, "zigzag")

	if shape := settings.GetIndicatorShape(); shape != DefaultShape {
		t.Errorf("Expected healed shape %s, got %s", DefaultShape, shape)
	}
	if stored := app.Preferences().String(KeyIndicatorShape); stored != string(DefaultShape) {
		t.Errorf("Expected stored shape rewritten to %s, got %s", DefaultShape, stored)
	}
}

func TestThickness(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if name := settings.GetThicknessName(); name != DefaultThicknessName {
		t.Errorf("Expected default thickness %s, got %s", DefaultThicknessName, name)
	}
	if thickness := settings.GetIndicatorThickness(); thickness != progress.Thin() {
		t.Error("Default thickness should map to the thin preset")
	}

	// Test setting custom value
	settings.SetThicknessName(ThicknessThick)
	if thickness := settings.GetIndicatorThickness(); thickness != progress.Thick() {
		t.Error("Thick option should map to the thick preset")
	}

	// Unknown values should heal back to the default
	settings.SetThicknessName("chunky")
	if name := settings.GetThicknessName(); name != DefaultThicknessName {
		t.Errorf("Expected healed thickness %s, got %s", DefaultThicknessName, name)
	}
}

func TestCircularDiameter(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if d := settings.GetCircularDiameter(); d != DefaultDiameter {
		t.Errorf("Expected default diameter %v, got %v", DefaultDiameter, d)
	}

	// Test setting custom value
	settings.SetCircularDiameter(96)
	if d := settings.GetCircularDiameter(); d != 96 {
		t.Errorf("Expected diameter 96, got %v", d)
	}

	// Test boundary values
	settings.SetCircularDiameter(10)
	if d := settings.GetCircularDiameter(); d != MinDiameter {
		t.Errorf("Expected diameter clamped to %v, got %v", MinDiameter, d)
	}

	settings.SetCircularDiameter(999)
	if d := settings.GetCircularDiameter(); d != MaxDiameter {
		t.Errorf("Expected diameter clamped to %v, got %v", MaxDiameter, d)
	}
}

func TestMaxParallelTransfers(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if maxParallel := settings.GetMaxParallelTransfers(); maxParallel != DefaultMaxParallel {
		t.Errorf("Expected default max parallel %d, got %d", DefaultMaxParallel, maxParallel)
	}

	// Test setting custom value
	settings.SetMaxParallelTransfers(5)
	if maxParallel := settings.GetMaxParallelTransfers(); maxParallel != 5 {
		t.Errorf("Expected max parallel 5, got %d", maxParallel)
	}

	// Test boundary values
	settings.SetMaxParallelTransfers(0)
	if settings.GetMaxParallelTransfers() != MinParallel {
		t.Error("Max parallel should be clamped to the minimum")
	}

	settings.SetMaxParallelTransfers(99)
	if settings.GetMaxParallelTransfers() != MaxParallelLimit {
		t.Error("Max parallel should be clamped to the maximum")
	}

	// Out-of-range stored values are clamped on read too
	app.Preferences().SetInt(KeyMaxParallel, -3)
	if settings.GetMaxParallelTransfers() != MinParallel {
		t.Error("Stored negative max parallel should read as the minimum")
	}
}

func TestSnapshotDirectory(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	dir := settings.GetSnapshotDirectory()
	if dir == "" {
		t.Error("Snapshot directory should not be empty")
	}

	// The healed default is persisted
	if again := settings.GetSnapshotDirectory(); again != dir {
		t.Errorf("Expected stable snapshot directory %s, got %s", dir, again)
	}

	// Test setting custom value
	customDir := "/custom/snapshots"
	settings.SetSnapshotDirectory(customDir)
	if got := settings.GetSnapshotDirectory(); got != customDir {
		t.Errorf("Expected snapshot directory %s, got %s", customDir, got)
	}
}
