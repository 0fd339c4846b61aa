package ui

import (
	"context"
	"log"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/screencraft/screencraft-studio/internal/client"
	"github.com/screencraft/screencraft-studio/internal/flow"
	"github.com/screencraft/screencraft-studio/internal/model"
	"github.com/screencraft/screencraft-studio/internal/platform"
	"github.com/screencraft/screencraft-studio/internal/preview"
)

// EmotionTab is the emotion analysis flow: a staged video clip plus the
// intended emotion label go to the remote classifier; the prediction,
// confidence and recommendations come back.
type EmotionTab struct {
	window    fyne.Window
	analyzer  client.EmotionAnalyzer
	submitter *flow.Submitter
	clips     *preview.Controller

	chooseBtn     *widget.Button
	clipLabel     *widget.Label
	emotionEntry  *widget.Entry
	analyzeBtn    *widget.Button
	clearBtn      *widget.Button
	notice        *NoticePanel
	resultCard    *widget.Card
	predictedText *widget.Label
	confidenceBar *widget.ProgressBar
	matchLabel    *widget.Label
	adviceLabel   *widget.Label

	content fyne.CanvasObject
}

// NewEmotionTab creates the emotion analysis flow view
func NewEmotionTab(window fyne.Window, analyzer client.EmotionAnalyzer, clips *preview.Controller) *EmotionTab {
	et := &EmotionTab{
		window:    window,
		analyzer:  analyzer,
		submitter: flow.NewSubmitter(),
		clips:     clips,
	}

	et.submitter.SetUpdateCallback(et.onSubmissionUpdate)
	et.createUI()
	return et
}

// Content returns the renderable tab content
func (et *EmotionTab) Content() fyne.CanvasObject {
	return et.content
}

// Close tears the flow down, releasing the staged clip and dropping any
// in-flight completion
func (et *EmotionTab) Close() {
	et.submitter.Close()
	et.clips.Close()
}

// createUI creates and arranges the tab components
func (et *EmotionTab) createUI() {
	et.chooseBtn = widget.NewButton(LabelChooseClip, et.onChooseClip)
	et.clipLabel = widget.NewLabel(MsgNoClipSelected)

	et.emotionEntry = widget.NewEntry()
	et.emotionEntry.SetPlaceHolder(PlaceholderEmotion)
	et.emotionEntry.OnSubmitted = func(string) {
		et.onAnalyze()
	}

	et.analyzeBtn = widget.NewButton(LabelAnalyze, et.onAnalyze)
	et.analyzeBtn.Importance = widget.HighImportance
	et.clearBtn = widget.NewButton(LabelClear, et.onClear)

	et.notice = NewNoticePanel()

	et.predictedText = widget.NewLabel(DashPlaceholder)
	et.predictedText.TextStyle = fyne.TextStyle{Bold: true}
	et.confidenceBar = widget.NewProgressBar()
	et.matchLabel = widget.NewLabel(DashPlaceholder)
	et.adviceLabel = widget.NewLabel("")
	et.adviceLabel.Wrapping = fyne.TextWrapWord

	resultBody := container.NewVBox(
		container.NewHBox(widget.NewLabel("Predicted:"), et.predictedText),
		et.confidenceBar,
		et.matchLabel,
		widget.NewSeparator(),
		et.adviceLabel,
	)
	et.resultCard = widget.NewCard("", "", resultBody)
	et.resultCard.Hide()

	clipRow := container.NewBorder(nil, nil, et.chooseBtn, nil, et.clipLabel)
	actionRow := container.NewHBox(et.analyzeBtn, et.clearBtn)

	et.content = container.NewVBox(
		clipRow,
		et.emotionEntry,
		actionRow,
		et.notice.Container(),
		et.resultCard,
	)
}

// onChooseClip stages a clip through the preview controller. Rejections
// (wrong type, oversized) leave the previous selection untouched.
func (et *EmotionTab) onChooseClip() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			et.notice.ShowMessage(err.Error(), false)
			return
		}
		if reader == nil {
			return // user cancelled
		}
		path := reader.URI().Path()
		reader.Close()

		resource, err := et.clips.Select(path)
		if err != nil {
			et.notice.ShowMessage(err.Error(), false)
			return
		}

		et.clipLabel.SetText(IconVideo + " " + resource.Name +
			MiddleDotSeparator + platform.FormatFileSize(resource.Size) +
			MiddleDotSeparator + resource.MIME)
		et.notice.Hide()
	}, et.window)
}

// onAnalyze validates the inputs and submits one analysis request
func (et *EmotionTab) onAnalyze() {
	resource := et.clips.Current()
	userEmotion := strings.TrimSpace(et.emotionEntry.Text)

	if resource == nil || userEmotion == "" {
		et.notice.ShowMessage(MsgEmotionRequired, false)
		return
	}

	clipPath := resource.StagedPath

	_, err := et.submitter.Submit(func(ctx context.Context) (any, error) {
		return et.analyzer.Analyze(ctx, clipPath, userEmotion)
	})
	if err != nil {
		// Pending guard: a second click while in flight is a no-op
		log.Printf("Emotion submission rejected: %v", err)
	}
}

// onSubmissionUpdate renders submission phase changes. Runs off the UI
// goroutine, so all widget mutation goes through fyne.Do.
func (et *EmotionTab) onSubmissionUpdate(submission *model.Submission) {
	fyne.Do(func() {
		switch submission.Phase {
		case model.PhasePending:
			et.analyzeBtn.Disable()
			et.resultCard.Hide()
			et.notice.ShowMessage(MsgAnalyzing, true)
		case model.PhaseSucceeded:
			et.analyzeBtn.Enable()
			et.notice.Hide()
			if result, ok := submission.Result.(*model.EmotionResult); ok {
				et.renderResult(result)
			}
		case model.PhaseFailed:
			et.analyzeBtn.Enable()
			et.resultCard.Hide()
			et.notice.ShowMessage(submission.LastError, false)
		}
	})
}

// renderResult projects the analysis payload into the result card
func (et *EmotionTab) renderResult(result *model.EmotionResult) {
	predicted := result.PredictedEmotion
	if predicted == "" {
		predicted = DashPlaceholder
	}
	et.predictedText.SetText(predicted + MiddleDotSeparator + result.ConfidencePercent())
	et.confidenceBar.SetValue(result.ConfidenceValue())

	if result.Match {
		et.matchLabel.SetText("✓ " + MsgMatchSuccess)
	} else {
		et.matchLabel.SetText("✗ " + MsgMatchMismatch)
	}

	et.adviceLabel.SetText(result.RecommendationText())
	et.resultCard.Show()
	et.resultCard.Refresh()
}

// onClear returns the flow to its initial empty state, releasing the
// staged clip exactly once
func (et *EmotionTab) onClear() {
	et.clips.Clear()
	et.clipLabel.SetText(MsgNoClipSelected)
	et.emotionEntry.SetText("")
	et.submitter.Reset()
	et.resultCard.Hide()
	et.analyzeBtn.Enable()
	et.notice.Hide()
}
