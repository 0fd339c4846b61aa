package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/screencraft/screencraft-studio/internal/config"
)

// SettingsDialog configures the remote service endpoints
type SettingsDialog struct {
	settings *config.Settings
	window   fyne.Window
	dialog   *dialog.ConfirmDialog

	// UI components
	scriptAPIEntry  *widget.Entry
	emotionAPIEntry *widget.Entry

	onSaved func()
}

// ShowSettingsDialog creates and shows the settings dialog
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, onSaved func()) {
	sd := &SettingsDialog{
		settings: settings,
		window:   window,
		onSaved:  onSaved,
	}

	sd.createUI()
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	sd.scriptAPIEntry = widget.NewEntry()
	sd.scriptAPIEntry.SetPlaceHolder(config.DefaultScriptAPIBase)

	sd.emotionAPIEntry = widget.NewEntry()
	sd.emotionAPIEntry.SetPlaceHolder(config.DefaultEmotionAPIBase)

	form := container.NewVBox(
		widget.NewLabel("Service Endpoints"),
		widget.NewSeparator(),

		widget.NewLabel("Script Generation API:"),
		sd.scriptAPIEntry,

		widget.NewLabel("Emotion Analysis API:"),
		sd.emotionAPIEntry,
	)

	sd.dialog = dialog.NewCustomConfirm(
		"Settings",
		"Save",
		"Cancel",
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(500, 300))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.scriptAPIEntry.SetText(sd.settings.GetScriptAPIBase())
	sd.emotionAPIEntry.SetText(sd.settings.GetEmotionAPIBase())
}

// onSave persists the edited endpoints
func (sd *SettingsDialog) onSave(save bool) {
	if !save {
		return
	}

	if base := sd.scriptAPIEntry.Text; base != "" {
		sd.settings.SetScriptAPIBase(base)
	}
	if base := sd.emotionAPIEntry.Text; base != "" {
		sd.settings.SetEmotionAPIBase(base)
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}
}
