package demo

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the gallery.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconSnapshot = "📷"
	IconClose    = "×"
	IconError    = "❌"
	IconPlay     = "▶"
	IconPause    = "⏸"
	IconStop     = "⏹"
	IconQueued   = "⏳"
	IconRetry    = "↻"
	IconTrash    = "🗑"
)

// Text fragments
const (
	MiddleDotSeparator  = " · "
	DashPlaceholder     = "—"
	ProgressLabelFormat = "%d%%"
)

// Progress display constants
const (
	MaxProgressPercent  = 100
	MinProgressPercent  = 1
	RoundingCoefficient = 0.5
)

// File size formatting
const (
	FileSizeUnit  = 1024
	FileSizeUnits = "KMGTPE"
)

// Transfer row sizing
const (
	StatusLabelWidth  float32 = 96
	SpeedLabelWidth   float32 = 132
	PercentLabelWidth float32 = 48

	RowMinWidth float32 = 420
)

// Toast notification sizing and behavior
const (
	ToastWidth    float32 = 300
	ToastHeight   float32 = 110
	ToastMargin   float32 = 20
	ToastAutoHide         = 5 * time.Second
)

// UI update debouncing
const (
	UIUpdateDebounce = 100 * time.Millisecond
)

// Simulated transfer generation
const (
	SimMinBytes int64 = 24 << 20
	SimMaxBytes int64 = 96 << 20

	TransferNameFormat = "payload-%03d.bin"
)
