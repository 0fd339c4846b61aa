package main

import (
	"fmt"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/screencraft/screencraft-studio/internal/client"
	"github.com/screencraft/screencraft-studio/internal/config"
	"github.com/screencraft/screencraft-studio/internal/platform"
	"github.com/screencraft/screencraft-studio/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.screencraft.studio"
	AppName = "ScreenCraft Studio"
)

func main() {
	// Log version information
	fmt.Printf("%s v%s starting...\n", AppName, version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Load settings; the optional endpoints file overrides stored values
	settings := config.NewSettings(myApp)
	config.ApplyEndpointsFile(settings)

	// Apply the persisted theme, falling back to the OS color scheme
	mode := settings.GetTheme(ui.SystemThemeMode(myApp))
	myApp.Settings().SetTheme(ui.NewAppTheme(mode))

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	// Preview staging directory for selected documents and clips
	previewDir := previewCacheDir()
	if err := platform.CreateDirectoryIfNotExists(previewDir); err != nil {
		fmt.Printf("failed to ensure preview dir: %v\n", err)
	}

	// Initialize service clients
	scriptClient := client.NewScriptClient(settings.GetScriptAPIBase())
	emotionClient := client.NewEmotionClient(settings.GetEmotionAPIBase())

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, settings, scriptClient, emotionClient, previewDir)

	// Show and run
	myWindow.ShowAndRun()
}

// previewCacheDir resolves the staging directory for preview copies
func previewCacheDir() string {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "screencraft", "previews")
	}
	return filepath.Join(cacheDir, "screencraft", "previews")
}
