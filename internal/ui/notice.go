package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// NoticePanel is the inline, dismissible message strip shown under each
// flow's controls. Validation and transport errors surface here instead of
// modal dialogs so the form stays usable.
type NoticePanel struct {
	label     *widget.Label
	spinner   *widget.ProgressBarInfinite
	container *fyne.Container
}

// NewNoticePanel creates a hidden notice panel
func NewNoticePanel() *NoticePanel {
	np := &NoticePanel{
		label:   widget.NewLabel(""),
		spinner: widget.NewProgressBarInfinite(),
	}
	np.label.Wrapping = fyne.TextWrapWord

	closeBtn := widget.NewButton(IconClose, np.Hide)
	closeBtn.Importance = widget.LowImportance

	np.spinner.Hide()
	np.container = container.NewBorder(nil, nil, np.spinner, closeBtn, np.label)
	np.container.Hide()
	return np
}

// Container returns the renderable panel
func (np *NoticePanel) Container() fyne.CanvasObject {
	return np.container
}

// ShowMessage displays a message; spinning indicates background activity
func (np *NoticePanel) ShowMessage(message string, spinning bool) {
	np.label.SetText(message)
	if spinning {
		np.spinner.Show()
	} else {
		np.spinner.Hide()
	}
	np.container.Show()
	np.container.Refresh()
}

// Hide dismisses the panel
func (np *NoticePanel) Hide() {
	np.spinner.Hide()
	np.container.Hide()
}
