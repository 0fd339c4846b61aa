package ui

import (
	"context"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/screencraft/screencraft-studio/internal/client"
	"github.com/screencraft/screencraft-studio/internal/config"
	"github.com/screencraft/screencraft-studio/internal/flow"
	"github.com/screencraft/screencraft-studio/internal/model"
	"github.com/screencraft/screencraft-studio/internal/platform"
	"github.com/screencraft/screencraft-studio/internal/preview"
)

// ScriptTab is the screenplay generation flow: draft text or an attached
// document goes to the remote service, the structured script comes back and
// can be saved as a text file.
type ScriptTab struct {
	window    fyne.Window
	settings  *config.Settings
	generator client.ScriptGenerator
	submitter *flow.Submitter
	documents *preview.Controller

	draft model.DraftInput

	draftEntry    *widget.Entry
	genreSelect   *widget.SelectEntry
	documentLabel *widget.Label
	attachBtn     *widget.Button
	detachBtn     *widget.Button
	generateBtn   *widget.Button
	resetBtn      *widget.Button
	saveBtn       *widget.Button
	resultEntry   *widget.Entry
	notice        *NoticePanel

	content fyne.CanvasObject
}

// NewScriptTab creates the script generation flow view
func NewScriptTab(window fyne.Window, settings *config.Settings, generator client.ScriptGenerator, documents *preview.Controller) *ScriptTab {
	st := &ScriptTab{
		window:    window,
		settings:  settings,
		generator: generator,
		submitter: flow.NewSubmitter(),
		documents: documents,
	}

	st.submitter.SetUpdateCallback(st.onSubmissionUpdate)
	st.createUI()
	return st
}

// Content returns the renderable tab content
func (st *ScriptTab) Content() fyne.CanvasObject {
	return st.content
}

// Close tears the flow down, releasing the staged document and dropping any
// in-flight completion
func (st *ScriptTab) Close() {
	st.submitter.Close()
	st.documents.Close()
}

// createUI creates and arranges the tab components
func (st *ScriptTab) createUI() {
	st.draftEntry = widget.NewMultiLineEntry()
	st.draftEntry.SetPlaceHolder(PlaceholderDraft)
	st.draftEntry.Wrapping = fyne.TextWrapWord

	st.genreSelect = widget.NewSelectEntry(st.settings.GetGenreOptions())
	st.genreSelect.SetPlaceHolder(PlaceholderGenre)
	st.genreSelect.SetText(st.settings.GetLastGenre())

	st.documentLabel = widget.NewLabel(MsgNoDocAttached)
	st.attachBtn = widget.NewButton(LabelAttachDoc, st.onAttachDocument)
	st.detachBtn = widget.NewButton(IconClose, st.onDetachDocument)
	st.detachBtn.Importance = widget.LowImportance
	st.detachBtn.Hide()

	st.generateBtn = widget.NewButton(LabelGenerate, st.onGenerate)
	st.generateBtn.Importance = widget.HighImportance
	st.resetBtn = widget.NewButton(LabelReset, st.onReset)

	st.saveBtn = widget.NewButton(LabelSaveScript, st.onSaveScript)
	st.saveBtn.Disable()

	st.resultEntry = widget.NewMultiLineEntry()
	st.resultEntry.Wrapping = fyne.TextWrapWord
	st.resultEntry.OnChanged = func(string) {
		// Result view is display-only; typing must not alter the payload
		st.renderResult()
	}

	st.notice = NewNoticePanel()

	documentRow := container.NewBorder(nil, nil, st.attachBtn, st.detachBtn, st.documentLabel)
	actionRow := container.NewHBox(st.generateBtn, st.resetBtn, st.saveBtn)

	form := container.NewVBox(
		st.genreSelect,
		documentRow,
		actionRow,
		st.notice.Container(),
	)

	split := container.NewVSplit(
		container.NewBorder(nil, form, nil, nil, st.draftEntry),
		st.resultEntry,
	)
	split.SetOffset(0.5)

	st.content = split
}

// onAttachDocument stages a draft document through the preview controller
func (st *ScriptTab) onAttachDocument() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			st.notice.ShowMessage(err.Error(), false)
			return
		}
		if reader == nil {
			return // user cancelled
		}
		path := reader.URI().Path()
		reader.Close()

		resource, err := st.documents.Select(path)
		if err != nil {
			st.notice.ShowMessage(err.Error(), false)
			return
		}

		st.draft.DocumentPath = resource.StagedPath
		st.draft.DocumentSize = resource.Size
		st.draft.DocumentMIME = resource.MIME

		st.documentLabel.SetText(resource.Name + MiddleDotSeparator + platform.FormatFileSize(resource.Size))
		st.detachBtn.Show()
		st.notice.Hide()
	}, st.window)
}

// onDetachDocument releases the staged document and falls back to text input
func (st *ScriptTab) onDetachDocument() {
	st.documents.Clear()
	st.draft.DocumentPath = ""
	st.draft.DocumentSize = 0
	st.draft.DocumentMIME = ""
	st.documentLabel.SetText(MsgNoDocAttached)
	st.detachBtn.Hide()
}

// onGenerate validates the draft and submits one generation request. A
// staged document takes precedence over pasted text.
func (st *ScriptTab) onGenerate() {
	st.draft.Text = st.draftEntry.Text
	st.draft.Genre = st.genreSelect.Text

	if !st.draft.IsSubmittable() {
		st.notice.ShowMessage(MsgDraftRequired, false)
		return
	}

	st.settings.SetLastGenre(st.draft.Genre)

	// Snapshot form state; the submission must not see later edits
	draftText := st.draft.Text
	documentPath := st.draft.DocumentPath
	genre := st.draft.Genre

	_, err := st.submitter.Submit(func(ctx context.Context) (any, error) {
		if documentPath != "" {
			return st.generator.GenerateFromDocument(ctx, documentPath, genre)
		}
		return st.generator.GenerateFromText(ctx, draftText, genre)
	})
	if err != nil {
		// Pending guard: a second click while in flight is a no-op
		log.Printf("Script submission rejected: %v", err)
	}
}

// onSubmissionUpdate renders submission phase changes. Runs off the UI
// goroutine, so all widget mutation goes through fyne.Do.
func (st *ScriptTab) onSubmissionUpdate(submission *model.Submission) {
	fyne.Do(func() {
		switch submission.Phase {
		case model.PhasePending:
			st.generateBtn.Disable()
			st.saveBtn.Disable()
			st.setResultText("")
			st.notice.ShowMessage(MsgGenerating, true)
		case model.PhaseSucceeded:
			st.generateBtn.Enable()
			st.notice.Hide()
			st.renderResult()
			st.saveBtn.Enable()
		case model.PhaseFailed:
			st.generateBtn.Enable()
			st.setResultText("")
			st.saveBtn.Disable()
			st.notice.ShowMessage(submission.LastError, false)
		}
	})
}

// renderResult projects the last successful payload into the result view
func (st *ScriptTab) renderResult() {
	submission := st.submitter.Current()
	if submission == nil || submission.Phase != model.PhaseSucceeded {
		st.setResultText("")
		return
	}
	if result, ok := submission.Result.(*model.ScriptResult); ok {
		st.setResultText(result.Text())
	}
}

// setResultText updates the result view without re-triggering render
func (st *ScriptTab) setResultText(text string) {
	if st.resultEntry.Text == text {
		return
	}
	onChanged := st.resultEntry.OnChanged
	st.resultEntry.OnChanged = nil
	st.resultEntry.SetText(text)
	st.resultEntry.OnChanged = onChanged
}

// onReset returns the flow to its initial empty state
func (st *ScriptTab) onReset() {
	st.draft.Reset()
	st.draftEntry.SetText("")
	st.genreSelect.SetText(st.settings.GetLastGenre())
	st.onDetachDocument()
	st.submitter.Reset()
	st.setResultText("")
	st.saveBtn.Disable()
	st.generateBtn.Enable()
	st.notice.Hide()
}

// onSaveScript exports the generated script as a text file and offers to
// open it with the default application
func (st *ScriptTab) onSaveScript() {
	submission := st.submitter.Current()
	if submission == nil || submission.Phase != model.PhaseSucceeded {
		return
	}
	result, ok := submission.Result.(*model.ScriptResult)
	if !ok {
		return
	}
	text := result.Text()

	dialog.ShowFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			st.notice.ShowMessage(err.Error(), false)
			return
		}
		if writer == nil {
			return // user cancelled
		}
		path := writer.URI().Path()
		writer.Close()

		if err := platform.SaveTextFile(path, text); err != nil {
			st.notice.ShowMessage(err.Error(), false)
			return
		}

		log.Printf("Script saved to %s", path)
		dialog.ShowConfirm(MsgScriptSaved, "Open the saved file?", func(open bool) {
			if !open {
				return
			}
			if err := platform.OpenFileWithDefaultApp(path); err != nil {
				st.notice.ShowMessage(err.Error(), false)
			}
		}, st.window)
	}, st.window)
}
