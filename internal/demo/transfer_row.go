package demo

import (
	"fmt"
	"image/color"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/crestui/crest/internal/transfer"
	"github.com/crestui/crest/progress"
)

// TransferRow shows one simulated transfer: name, status, live telemetry
// and a buffered progress bar.
type TransferRow struct {
	widget.BaseWidget

	task *transfer.Task

	nameLabel     *widget.Label
	statusLabel   *widget.Label
	percentLabel  *widget.Label
	speedEtaLabel *widget.Label
	bar           *progress.Linear

	pauseBtn *widget.Button
	stopBtn  *widget.Button
	trashBtn *widget.Button

	onPauseResume func(taskID string)
	onStop        func(taskID string)
	onRemove      func(taskID string)
}

// NewTransferRow creates a row bound to the given task snapshot
func NewTransferRow(task *transfer.Task) *TransferRow {
	if task == nil {
		log.Printf("Warning: NewTransferRow called with nil task")
		task = &transfer.Task{ID: "unknown", Status: transfer.StatusPending}
	}

	tr := &TransferRow{task: task}
	tr.ExtendBaseWidget(tr)
	tr.createUI()
	tr.applySnapshot()
	return tr
}

// SetCallbacks sets the action callbacks
func (tr *TransferRow) SetCallbacks(onPauseResume, onStop, onRemove func(taskID string)) {
	tr.onPauseResume = onPauseResume
	tr.onStop = onStop
	tr.onRemove = onRemove
}

// TaskID returns the ID of the bound task
func (tr *TransferRow) TaskID() string {
	return tr.task.ID
}

// Status returns the status of the last applied snapshot
func (tr *TransferRow) Status() transfer.Status {
	return tr.task.Status
}

// UpdateTask applies a fresh task snapshot to the row
func (tr *TransferRow) UpdateTask(task *transfer.Task) {
	if task == nil {
		log.Printf("Warning: UpdateTask called with nil task for row %s", tr.task.ID)
		return
	}
	tr.task = task
	tr.applySnapshot()
	tr.Refresh()
}

// createUI creates the UI components
func (tr *TransferRow) createUI() {
	tr.nameLabel = widget.NewLabel("")
	tr.nameLabel.TextStyle = fyne.TextStyle{Bold: true}
	tr.nameLabel.Truncation = fyne.TextTruncateEllipsis

	tr.statusLabel = widget.NewLabel("")
	tr.statusLabel.Alignment = fyne.TextAlignTrailing

	tr.percentLabel = widget.NewLabel("")
	tr.percentLabel.Alignment = fyne.TextAlignTrailing

	tr.speedEtaLabel = widget.NewLabel("")
	tr.speedEtaLabel.Alignment = fyne.TextAlignTrailing

	tr.bar = progress.NewLinear()

	tr.pauseBtn = widget.NewButton(IconPause, func() {
		if tr.onPauseResume != nil {
			tr.onPauseResume(tr.task.ID)
		}
	})
	tr.stopBtn = widget.NewButton(IconStop, func() {
		if tr.onStop != nil {
			tr.onStop(tr.task.ID)
		}
	})
	tr.trashBtn = widget.NewButton(IconTrash, func() {
		if tr.onRemove != nil {
			tr.onRemove(tr.task.ID)
		}
	})
}

// applySnapshot refreshes every component from the bound task
func (tr *TransferRow) applySnapshot() {
	task := tr.task

	tr.nameLabel.SetText(task.GetDisplayName())

	switch task.Status {
	case transfer.StatusError:
		tr.statusLabel.Importance = widget.DangerImportance
		tr.statusLabel.SetText(IconError + " " + task.Status.String())
	case transfer.StatusCompleted:
		tr.statusLabel.Importance = widget.SuccessImportance
		tr.statusLabel.SetText(task.Status.String())
	case transfer.StatusRunning:
		tr.statusLabel.Importance = widget.HighImportance
		tr.statusLabel.SetText(IconPlay + " " + task.Status.String())
	case transfer.StatusPaused:
		tr.statusLabel.Importance = widget.MediumImportance
		tr.statusLabel.SetText(IconPause + " " + task.Status.String())
	case transfer.StatusPending:
		tr.statusLabel.Importance = widget.MediumImportance
		tr.statusLabel.SetText(IconQueued + " " + task.Status.String())
	case transfer.StatusStopped:
		tr.statusLabel.Importance = widget.MediumImportance
		tr.statusLabel.SetText(IconStop + " " + task.Status.String())
	default:
		tr.statusLabel.Importance = widget.MediumImportance
		tr.statusLabel.SetText(task.Status.String())
	}

	if task.Status == transfer.StatusCompleted {
		tr.percentLabel.SetText("")
	} else {
		tr.percentLabel.SetText(fmt.Sprintf(ProgressLabelFormat, effectivePercent(task)))
	}

	tr.speedEtaLabel.SetText(speedEtaText(task))

	tr.applyToBar(task)
	tr.updateButtons()
}

// applyToBar drives the indicator: indeterminate while the link starts,
// buffered determinate once bytes flow
func (tr *TransferRow) applyToBar(task *transfer.Task) {
	switch task.Status {
	case transfer.StatusStarting:
		tr.bar.SetIndeterminate(true)
	case transfer.StatusCompleted:
		tr.bar.SetIndeterminate(false)
		tr.bar.SetBuffer(1)
		tr.bar.SetValue(1)
	default:
		tr.bar.SetIndeterminate(false)
		tr.bar.SetBuffer(task.BufferFraction())
		tr.bar.SetValue(task.Progress)
	}
}

// updateButtons enables only the actions the service accepts for the
// current status
func (tr *TransferRow) updateButtons() {
	switch tr.task.Status {
	case transfer.StatusStarting, transfer.StatusRunning:
		tr.pauseBtn.SetText(IconPause)
		tr.pauseBtn.Enable()
		tr.stopBtn.Enable()
		tr.trashBtn.Disable()
	case transfer.StatusPaused:
		tr.pauseBtn.SetText(IconPlay)
		tr.pauseBtn.Enable()
		tr.stopBtn.Disable()
		tr.trashBtn.Enable()
	case transfer.StatusStopped, transfer.StatusError:
		tr.pauseBtn.SetText(IconRetry)
		tr.pauseBtn.Enable()
		tr.stopBtn.Disable()
		tr.trashBtn.Enable()
	case transfer.StatusCompleted:
		tr.pauseBtn.SetText(IconRetry)
		tr.pauseBtn.Enable()
		tr.stopBtn.Disable()
		tr.trashBtn.Enable()
	case transfer.StatusPending:
		tr.pauseBtn.SetText(IconPause)
		tr.pauseBtn.Disable()
		tr.stopBtn.Disable()
		tr.trashBtn.Enable()
	default:
		tr.pauseBtn.Disable()
		tr.stopBtn.Disable()
		tr.trashBtn.Disable()
	}
}

// CreateRenderer creates the widget renderer
func (tr *TransferRow) CreateRenderer() fyne.WidgetRenderer {
	return &transferRowRenderer{row: tr}
}

// effectivePercent returns a display percentage, falling back to the
// fractional progress when the integer field lags behind
func effectivePercent(task *transfer.Task) int {
	percent := task.Percent
	if percent <= 0 && task.Progress > 0 {
		percent = int(task.Progress*MaxProgressPercent + RoundingCoefficient)
		if percent == 0 {
			percent = MinProgressPercent
		}
	}
	if percent < 0 {
		percent = 0
	}
	if percent > MaxProgressPercent {
		percent = MaxProgressPercent
	}
	return percent
}

// speedEtaText builds the telemetry fragment for the row
func speedEtaText(task *transfer.Task) string {
	switch task.Status {
	case transfer.StatusRunning:
		text := task.Speed
		if task.ETASec > 0 {
			if text != "" {
				text += MiddleDotSeparator
			}
			text += task.GetETAString()
		}
		if text == "" {
			text = DashPlaceholder
		}
		return text
	case transfer.StatusError:
		return task.LastError
	case transfer.StatusCompleted:
		return formatFileSize(task.TotalBytes)
	default:
		return formatFileSize(task.DoneBytes) + " / " + formatFileSize(task.TotalBytes)
	}
}

// formatFileSize formats file size in bytes to human readable format
func formatFileSize(bytes int64) string {
	if bytes < FileSizeUnit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(FileSizeUnit), 0
	for n := bytes / FileSizeUnit; n >= FileSizeUnit; n /= FileSizeUnit {
		div *= FileSizeUnit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), FileSizeUnits[exp])
}

type transferRowRenderer struct {
	row    *TransferRow
	layout *fyne.Container
}

func (r *transferRowRenderer) Layout(size fyne.Size) {
	if r.layout == nil {
		r.createLayout()
	}
	if size.Width < RowMinWidth {
		size.Width = RowMinWidth
	}
	r.layout.Resize(size)
}

func (r *transferRowRenderer) MinSize() fyne.Size {
	if r.layout == nil {
		r.createLayout()
	}
	size := r.layout.MinSize()
	if size.Width < RowMinWidth {
		size.Width = RowMinWidth
	}
	return size
}

func (r *transferRowRenderer) Refresh() {
	if r.layout == nil {
		r.createLayout()
	}
	r.layout.Refresh()
}

func (r *transferRowRenderer) Objects() []fyne.CanvasObject {
	if r.layout == nil {
		r.createLayout()
	}
	return []fyne.CanvasObject{r.layout}
}

func (r *transferRowRenderer) Destroy() {}

// createLayout arranges name left, telemetry and actions right, bar below
func (r *transferRowRenderer) createLayout() {
	tr := r.row

	fixedWidth := func(w float32, obj fyne.CanvasObject) fyne.CanvasObject {
		spacer := canvas.NewRectangle(color.RGBA{0, 0, 0, 0})
		spacer.SetMinSize(fyne.NewSize(w, obj.MinSize().Height))
		return container.NewStack(spacer, obj)
	}

	info := container.NewHBox(
		fixedWidth(SpeedLabelWidth, tr.speedEtaLabel),
		fixedWidth(PercentLabelWidth, tr.percentLabel),
		fixedWidth(StatusLabelWidth, tr.statusLabel),
	)
	actions := container.NewHBox(tr.pauseBtn, tr.stopBtn, tr.trashBtn)
	rightCluster := container.NewBorder(nil, nil, nil, actions, info)

	head := container.NewBorder(nil, nil, nil, rightCluster, tr.nameLabel)

	r.layout = container.NewVBox(
		head,
		tr.bar,
		widget.NewSeparator(),
	)
}
