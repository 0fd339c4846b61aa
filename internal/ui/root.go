package ui

import (
	"log"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/screencraft/screencraft-studio/internal/client"
	"github.com/screencraft/screencraft-studio/internal/config"
	"github.com/screencraft/screencraft-studio/internal/preview"
)

// RootUI represents the main UI structure: the two feature flow tabs, the
// theme toggle, and the settings dialog.
type RootUI struct {
	window   fyne.Window
	app      fyne.App
	settings *config.Settings

	scriptTab  *ScriptTab
	emotionTab *EmotionTab
	tabs       *container.AppTabs
	themeBtn   *widget.Button
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, settings *config.Settings,
	generator client.ScriptGenerator, analyzer client.EmotionAnalyzer, previewDir string) *RootUI {

	ui := &RootUI{
		window:   window,
		app:      app,
		settings: settings,
	}

	documents := preview.NewController(
		filepath.Join(previewDir, "documents"),
		preview.DocumentPolicy(config.MaxDocumentUploadBytes),
	)
	clips := preview.NewController(
		filepath.Join(previewDir, "clips"),
		preview.VideoPolicy(config.MaxVideoUploadBytes),
	)

	ui.scriptTab = NewScriptTab(window, settings, generator, documents)
	ui.emotionTab = NewEmotionTab(window, analyzer, clips)

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.tabs = container.NewAppTabs(
		container.NewTabItem(TabScriptStudio, ui.scriptTab.Content()),
		container.NewTabItem(TabEmotionCheck, ui.emotionTab.Content()),
	)

	ui.themeBtn = widget.NewButton(IconTheme, ui.onToggleTheme)
	ui.themeBtn.Importance = widget.LowImportance

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	topPanel := container.NewBorder(nil, nil, nil, container.NewHBox(ui.themeBtn, settingsBtn))

	content := container.NewBorder(
		topPanel, // top
		nil,      // bottom
		nil,      // left
		nil,      // right
		ui.tabs,  // center
	)

	ui.window.SetContent(content)

	// Ctrl/Cmd+T toggles the theme
	ui.window.Canvas().AddShortcut(&desktop.CustomShortcut{
		KeyName:  fyne.KeyT,
		Modifier: fyne.KeyModifierShortcutDefault,
	}, func(fyne.Shortcut) {
		ui.onToggleTheme()
	})

	// Views own their flow state; tear them down with the window so late
	// responses never write into dead widgets
	ui.window.SetOnClosed(func() {
		ui.scriptTab.Close()
		ui.emotionTab.Close()
	})

	log.Printf("UI setup completed successfully")
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem("Settings", ui.onShowSettings)
	toggleItem := fyne.NewMenuItem("Toggle Theme", ui.onToggleTheme)

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu("File", settingsItem),
		fyne.NewMenu("View", toggleItem),
	)

	ui.window.SetMainMenu(mainMenu)
}

// onToggleTheme flips between dark and light, persisting the choice
func (ui *RootUI) onToggleTheme() {
	mode := ui.settings.ToggleTheme(SystemThemeMode(ui.app))
	ui.app.Settings().SetTheme(NewAppTheme(mode))
	log.Printf("Theme switched to %s", mode)
}

// onShowSettings shows the endpoints settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, func() {
		widget.ShowPopUp(widget.NewLabel("Settings saved. Restart to apply new endpoints."), ui.window.Canvas())
	})
}

// SystemThemeMode maps the OS color scheme to a theme mode
func SystemThemeMode(app fyne.App) config.ThemeMode {
	if app.Settings().ThemeVariant() == theme.VariantLight {
		return config.ThemeLight
	}
	return config.ThemeDark
}
