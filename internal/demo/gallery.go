package demo

import (
	"fmt"
	"log"
	"math/rand/v2"
	"path/filepath"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/crestui/crest/internal/transfer"
	"github.com/crestui/crest/progress"
)

// Gallery window constants
const (
	AppTitle     = "Crest Gallery"
	WindowWidth  = 760
	WindowHeight = 680
)

// Showcase defaults
const (
	ShowcaseValue  = 0.65
	ShowcaseBuffer = 0.85

	VariantValue            = 0.7
	VariantDiameter float32 = 40
)

// GalleryUI represents the main gallery structure
type GalleryUI struct {
	window   fyne.Window
	settings *Settings

	transferSvc transfer.Transferer

	// Hero indicators driven by the control cards
	linearDemo   *progress.Linear
	circularDemo *progress.Circular

	// Transfer list state, touched only on the UI goroutine
	rowList       *fyne.Container
	rows          map[string]*TransferRow
	transferCount int

	// UI update debouncing
	lastUIUpdate  time.Time
	uiUpdateMutex sync.Mutex
}

// NewGalleryUI creates and initializes the gallery
func NewGalleryUI(window fyne.Window, app fyne.App, transferSvc transfer.Transferer) *GalleryUI {
	settings := NewSettings(app)

	ui := &GalleryUI{
		window:      window,
		settings:    settings,
		transferSvc: transferSvc,
		rows:        make(map[string]*TransferRow),
	}

	window.SetTitle(AppTitle)

	// Route service updates into the row widgets
	ui.transferSvc.SetUpdateCallback(ui.onTransferUpdate)

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *GalleryUI) setupUI() {
	titleLabel := widget.NewLabel(AppTitle)
	titleLabel.TextStyle = fyne.TextStyle{Bold: true}

	snapshotBtn := widget.NewButton(IconSnapshot, ui.onSnapshotClick)
	snapshotBtn.Importance = widget.LowImportance

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	header := container.NewBorder(nil, nil, titleLabel, container.NewHBox(snapshotBtn, settingsBtn))

	// The circular card is created first so the shared thickness select on
	// the linear card can reach both hero indicators.
	circularCard := ui.createCircularCard()
	linearCard := ui.createLinearCard()
	variants := ui.createVariantStrip()
	transfers := ui.createTransferPanel()

	body := container.NewVBox(
		linearCard,
		widget.NewSeparator(),
		circularCard,
		widget.NewSeparator(),
		sectionLabel("Variants"),
		variants,
		widget.NewSeparator(),
		transfers,
	)

	content := container.NewBorder(header, nil, nil, nil, container.NewVScroll(body))
	ui.window.SetContent(content)

	log.Printf("Gallery setup completed")
}

// createLinearCard builds the buffered bar with its control row
func (ui *GalleryUI) createLinearCard() fyne.CanvasObject {
	ui.linearDemo = progress.NewLinearWithConfig(progress.Config{
		Value:     ShowcaseValue,
		Buffer:    ShowcaseBuffer,
		Shape:     ui.settings.GetIndicatorShape(),
		Thickness: ui.settings.GetIndicatorThickness(),
	})
	ui.linearDemo.OnCompleted = func() {
		log.Printf("Linear showcase reached full value")
	}

	valueSlider := widget.NewSlider(0, 1)
	valueSlider.Step = 0.01
	valueSlider.Value = ShowcaseValue
	valueSlider.OnChanged = func(v float64) {
		ui.linearDemo.SetValue(v)
	}

	bufferSlider := widget.NewSlider(0, 1)
	bufferSlider.Step = 0.01
	bufferSlider.Value = ShowcaseBuffer
	bufferSlider.OnChanged = func(v float64) {
		ui.linearDemo.SetBuffer(v)
	}

	indetCheck := widget.NewCheck("Indeterminate", func(on bool) {
		ui.linearDemo.SetIndeterminate(on)
		if on {
			valueSlider.Disable()
			bufferSlider.Disable()
		} else {
			valueSlider.Enable()
			bufferSlider.Enable()
		}
	})

	wavyCheck := widget.NewCheck("Wavy", func(on bool) {
		shape := progress.ShapeFlat
		if on {
			shape = progress.ShapeWavy
		}
		ui.settings.SetIndicatorShape(shape)
		ui.linearDemo.SetShape(shape)
		ui.circularDemo.SetShape(shape)
	})
	wavyCheck.Checked = ui.settings.GetIndicatorShape() == progress.ShapeWavy

	thicknessSelect := widget.NewSelect(ui.settings.GetThicknessOptions(), func(name string) {
		ui.settings.SetThicknessName(name)
		thickness := ui.settings.GetIndicatorThickness()
		ui.linearDemo.SetThickness(thickness)
		ui.circularDemo.SetThickness(thickness)
	})
	thicknessSelect.Selected = ui.settings.GetThicknessName()

	controls := container.NewVBox(
		container.NewBorder(nil, nil, widget.NewLabel("Value:"), nil, valueSlider),
		container.NewBorder(nil, nil, widget.NewLabel("Buffer:"), nil, bufferSlider),
		container.NewHBox(indetCheck, wavyCheck, widget.NewLabel("Thickness:"), thicknessSelect),
	)

	return container.NewVBox(
		sectionLabel("Linear"),
		ui.linearDemo,
		controls,
	)
}

// createCircularCard builds the dial with its control row
func (ui *GalleryUI) createCircularCard() fyne.CanvasObject {
	ui.circularDemo = progress.NewCircularWithConfig(progress.Config{
		Value:     ShowcaseValue,
		Shape:     ui.settings.GetIndicatorShape(),
		Thickness: ui.settings.GetIndicatorThickness(),
		Diameter:  ui.settings.GetCircularDiameter(),
	})

	valueSlider := widget.NewSlider(0, 1)
	valueSlider.Step = 0.01
	valueSlider.Value = ShowcaseValue
	valueSlider.OnChanged = func(v float64) {
		ui.circularDemo.SetValue(v)
	}

	diameterSlider := widget.NewSlider(float64(MinDiameter), float64(MaxDiameter))
	diameterSlider.Step = 4
	diameterSlider.Value = float64(ui.settings.GetCircularDiameter())
	diameterSlider.OnChanged = func(v float64) {
		d := float32(v)
		ui.settings.SetCircularDiameter(d)
		ui.circularDemo.SetDiameter(d)
	}

	indetCheck := widget.NewCheck("Indeterminate", func(on bool) {
		ui.circularDemo.SetIndeterminate(on)
		if on {
			valueSlider.Disable()
		} else {
			valueSlider.Enable()
		}
	})

	controls := container.NewVBox(
		container.NewBorder(nil, nil, widget.NewLabel("Value:"), nil, valueSlider),
		container.NewBorder(nil, nil, widget.NewLabel("Diameter:"), nil, diameterSlider),
		container.NewHBox(indetCheck),
	)

	return container.NewVBox(
		sectionLabel("Circular"),
		container.NewCenter(ui.circularDemo),
		controls,
	)
}

// createVariantStrip builds one indicator per shape/mode combination
func (ui *GalleryUI) createVariantStrip() fyne.CanvasObject {
	flatBar := progress.NewLinearWithConfig(progress.Config{Value: VariantValue})
	wavyBar := progress.NewLinearWithConfig(progress.Config{Value: VariantValue, Shape: progress.ShapeWavy})
	busyBar := progress.NewLinearWithConfig(progress.Config{Indeterminate: true})

	flatDial := progress.NewCircularWithConfig(progress.Config{Value: VariantValue, Diameter: VariantDiameter})
	wavyDial := progress.NewCircularWithConfig(progress.Config{Value: VariantValue, Shape: progress.ShapeWavy, Diameter: VariantDiameter})
	busyDial := progress.NewCircularWithConfig(progress.Config{Indeterminate: true, Diameter: VariantDiameter})

	cell := func(name string, obj fyne.CanvasObject) fyne.CanvasObject {
		label := widget.NewLabel(name)
		label.Alignment = fyne.TextAlignCenter
		return container.NewVBox(obj, label)
	}

	return container.NewGridWithColumns(3,
		cell("Flat", flatBar),
		cell("Wavy", wavyBar),
		cell("Indeterminate", busyBar),
		cell("Flat dial", container.NewCenter(flatDial)),
		cell("Wavy dial", container.NewCenter(wavyDial)),
		cell("Indeterminate dial", container.NewCenter(busyDial)),
	)
}

// createTransferPanel builds the simulated transfer section
func (ui *GalleryUI) createTransferPanel() fyne.CanvasObject {
	addBtn := widget.NewButton("Add transfer", ui.onAddTransfer)
	addBtn.Importance = widget.HighImportance

	ui.rowList = container.NewVBox()

	header := container.NewBorder(nil, nil, sectionLabel("Simulated transfers"), addBtn)
	return container.NewVBox(header, ui.rowList)
}

// onAddTransfer queues a new simulated transfer with a random size
func (ui *GalleryUI) onAddTransfer() {
	ui.transferCount++
	name := fmt.Sprintf(TransferNameFormat, ui.transferCount)
	size := SimMinBytes + rand.Int64N(SimMaxBytes-SimMinBytes+1)

	task, err := ui.transferSvc.AddTask(name, size)
	if err != nil {
		dialog.ShowError(err, ui.window)
		return
	}
	log.Printf("Added transfer %s (%s, %d bytes)", task.ID, name, size)
	ui.addRow(task)
}

// addRow creates and mounts a row widget for the task
func (ui *GalleryUI) addRow(task *transfer.Task) {
	if _, ok := ui.rows[task.ID]; ok {
		return
	}
	row := NewTransferRow(task)
	row.SetCallbacks(ui.onPauseResumeTransfer, ui.onStopTransfer, ui.onRemoveTransfer)
	ui.rows[task.ID] = row
	ui.rowList.Add(row)
}

// onTransferUpdate handles task updates from the transfer service.
// The service calls it from worker goroutines, so all widget work is
// dispatched through fyne.Do.
func (ui *GalleryUI) onTransferUpdate(task *transfer.Task) {
	fyne.Do(func() {
		row, ok := ui.rows[task.ID]
		if !ok {
			ui.addRow(task)
			return
		}

		wasCompleted := row.Status() != transfer.StatusCompleted && task.Status == transfer.StatusCompleted
		row.UpdateTask(task)

		if wasCompleted {
			log.Printf("Transfer %s completed", task.ID)
			ui.sendCompletionNotification(task)
		}

		ui.debouncedRefresh()
	})
}

// debouncedRefresh prevents excessive list refreshes during fast updates
func (ui *GalleryUI) debouncedRefresh() {
	ui.uiUpdateMutex.Lock()
	defer ui.uiUpdateMutex.Unlock()

	now := time.Now()
	if now.Sub(ui.lastUIUpdate) < UIUpdateDebounce {
		return
	}
	ui.lastUIUpdate = now

	ui.rowList.Refresh()
}

// sendCompletionNotification raises a system notification and a toast
func (ui *GalleryUI) sendCompletionNotification(task *transfer.Task) {
	fyne.CurrentApp().SendNotification(&fyne.Notification{
		Title:   "Transfer complete",
		Content: task.GetDisplayName(),
	})

	ui.showToast("Transfer complete", task.GetDisplayName(), nil)
}

// onSnapshotClick captures the canvas and saves it as a PNG
func (ui *GalleryUI) onSnapshotClick() {
	dir := ui.settings.GetSnapshotDirectory()
	path, err := SaveSnapshot(ui.window.Canvas(), dir)
	if err != nil {
		log.Printf("Snapshot failed: %v", err)
		dialog.ShowError(err, ui.window)
		return
	}
	log.Printf("Snapshot saved: %s", path)

	revealBtn := widget.NewButton("Reveal", func() {
		if err := RevealInFileManager(path); err != nil {
			log.Printf("Failed to reveal snapshot %s: %v", path, err)
		}
	})
	revealBtn.Importance = widget.HighImportance

	ui.showToast("Snapshot saved", filepath.Base(path), revealBtn)
}

// onShowSettings shows the settings dialog
func (ui *GalleryUI) onShowSettings() {
	d := NewSettingsDialog(ui.settings, ui.window, func() {
		ui.transferSvc.SetMaxParallel(ui.settings.GetMaxParallelTransfers())
	})
	d.Show()
}

// onPauseResumeTransfer handles the row's pause/resume/retry button
func (ui *GalleryUI) onPauseResumeTransfer(taskID string) {
	task, ok := ui.transferSvc.GetTask(taskID)
	if !ok {
		log.Printf("Task %s not found", taskID)
		return
	}

	switch task.Status {
	case transfer.StatusPaused:
		if err := ui.transferSvc.ResumeTask(taskID); err != nil {
			log.Printf("Failed to resume task %s: %v", taskID, err)
		}
	case transfer.StatusStarting, transfer.StatusRunning:
		if err := ui.transferSvc.PauseTask(taskID); err != nil {
			log.Printf("Failed to pause task %s: %v", taskID, err)
		}
	case transfer.StatusStopped, transfer.StatusError, transfer.StatusCompleted:
		if err := ui.transferSvc.RestartTask(taskID); err != nil {
			log.Printf("Failed to restart task %s: %v", taskID, err)
		}
	default:
		log.Printf("No action for task %s in status %s", taskID, task.Status)
	}
}

// onStopTransfer handles the row's stop button
func (ui *GalleryUI) onStopTransfer(taskID string) {
	if err := ui.transferSvc.StopTask(taskID); err != nil {
		log.Printf("Failed to stop task %s: %v", taskID, err)
	}
}

// onRemoveTransfer handles the row's remove button
func (ui *GalleryUI) onRemoveTransfer(taskID string) {
	if err := ui.transferSvc.RemoveTask(taskID); err != nil {
		log.Printf("Failed to remove task %s: %v", taskID, err)
		dialog.ShowError(err, ui.window)
		return
	}

	if row, ok := ui.rows[taskID]; ok {
		delete(ui.rows, taskID)
		ui.rowList.Remove(row)
		ui.rowList.Refresh()
	}
	log.Printf("Removed transfer %s", taskID)
}

// showToast shows an in-app toast in the top-right corner with an
// optional action button
func (ui *GalleryUI) showToast(title, message string, action *widget.Button) {
	titleLabel := widget.NewLabel(title)
	titleLabel.TextStyle = fyne.TextStyle{Bold: true}

	messageLabel := widget.NewLabel(message)
	messageLabel.Truncation = fyne.TextTruncateEllipsis

	var toastPopup *widget.PopUp
	closeBtn := widget.NewButton(IconClose, func() {
		if toastPopup != nil {
			toastPopup.Hide()
		}
	})
	closeBtn.Importance = widget.LowImportance

	header := container.NewBorder(nil, nil, titleLabel, closeBtn)
	items := []fyne.CanvasObject{header, messageLabel}
	if action != nil {
		items = append(items, container.NewHBox(action))
	}
	content := container.NewVBox(items...)

	toastPopup = widget.NewPopUp(content, ui.window.Canvas())

	canvasSize := ui.window.Canvas().Size()
	toastPopup.Resize(fyne.NewSize(ToastWidth, ToastHeight))
	toastPopup.Move(fyne.NewPos(canvasSize.Width-ToastWidth-ToastMargin, ToastMargin))
	toastPopup.Show()

	// Auto-hide after the configured time
	go func() {
		time.Sleep(ToastAutoHide)
		fyne.Do(func() {
			toastPopup.Hide()
		})
	}()
}

// sectionLabel returns a bold label used as a section heading
func sectionLabel(text string) *widget.Label {
	label := widget.NewLabel(text)
	label.TextStyle = fyne.TextStyle{Bold: true}
	return label
}
