package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/crestui/crest/internal/demo"
	"github.com/crestui/crest/internal/transfer"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.crestui.crest-gallery"
	AppName = "Crest Gallery"
)

func main() {
	// Log version information
	fmt.Printf("%s v%s starting...\n", AppName, version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply gallery theme
	myApp.Settings().SetTheme(demo.NewGalleryTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(demo.WindowWidth, demo.WindowHeight))

	// Initialize services
	settings := demo.NewSettings(myApp)
	transferSvc := transfer.NewService(settings.GetMaxParallelTransfers())

	// Create and setup UI
	demo.NewGalleryUI(myWindow, myApp, transferSvc)

	// Show and run
	myWindow.ShowAndRun()
}
