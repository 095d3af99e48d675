package demo

import (
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// Settings dialog constants
const (
	SettingsDialogTitle  = "Gallery Settings"
	SaveButtonText       = "Save"
	CancelButtonText     = "Cancel"
	BrowseButtonText     = "Browse..."
	SettingsDialogWidth  = 460
	SettingsDialogHeight = 240
)

// SettingsDialog edits the persisted gallery options that live outside
// the showcase cards
type SettingsDialog struct {
	settings *Settings
	window   fyne.Window
	onSaved  func()

	maxParallelEntry *widget.Entry
	snapshotDirEntry *widget.Entry
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *Settings, window fyne.Window, onSaved func()) *SettingsDialog {
	return &SettingsDialog{
		settings: settings,
		window:   window,
		onSaved:  onSaved,
	}
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	content := sd.createContent()

	d := dialog.NewCustomConfirm(SettingsDialogTitle, SaveButtonText, CancelButtonText, content,
		func(save bool) {
			if save {
				sd.saveSettings()
			}
		}, sd.window)
	d.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
	d.Show()
}

// createContent creates the dialog content
func (sd *SettingsDialog) createContent() fyne.CanvasObject {
	sd.maxParallelEntry = widget.NewEntry()
	sd.maxParallelEntry.SetPlaceHolder(fmt.Sprintf("%d-%d", MinParallel, MaxParallelLimit))
	sd.maxParallelEntry.SetText(strconv.Itoa(sd.settings.GetMaxParallelTransfers()))

	sd.snapshotDirEntry = widget.NewEntry()
	sd.snapshotDirEntry.SetText(sd.settings.GetSnapshotDirectory())

	browseBtn := widget.NewButton(BrowseButtonText, sd.browseSnapshotDir)
	dirRow := container.NewBorder(nil, nil, nil, browseBtn, sd.snapshotDirEntry)

	return container.NewVBox(
		widget.NewLabel("Transfer Settings"),
		widget.NewSeparator(),

		widget.NewLabel("Max Parallel Transfers:"),
		sd.maxParallelEntry,

		widget.NewSeparator(),
		widget.NewLabel("Snapshot Settings"),
		widget.NewSeparator(),

		widget.NewLabel("Snapshot Directory:"),
		dirRow,
	)
}

// browseSnapshotDir opens a folder picker for the snapshot directory
func (sd *SettingsDialog) browseSnapshotDir() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil {
			dialog.ShowError(err, sd.window)
			return
		}
		if uri != nil {
			sd.snapshotDirEntry.SetText(uri.Path())
		}
	}, sd.window)
}

// saveSettings validates and persists the dialog values
func (sd *SettingsDialog) saveSettings() {
	maxParallel, err := strconv.Atoi(sd.maxParallelEntry.Text)
	if err != nil {
		dialog.ShowError(fmt.Errorf("max parallel transfers must be a number"), sd.window)
		return
	}
	sd.settings.SetMaxParallelTransfers(maxParallel)

	if dir := sd.snapshotDirEntry.Text; dir != "" {
		sd.settings.SetSnapshotDirectory(dir)
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}

	dialog.ShowInformation(SettingsDialogTitle, "Settings saved.", sd.window)
}
