package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconTheme    = "◐"
	IconAttach   = "📎"
	IconClose    = "×"
	IconVideo    = "🎬"
	IconSave     = "💾"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	DashPlaceholder    = "—"
)

// Tab titles
const (
	TabScriptStudio = "Script Studio"
	TabEmotionCheck = "Emotion Check"
)

// Button labels
const (
	LabelGenerate   = "Generate Script"
	LabelAnalyze    = "Analyze Emotion"
	LabelReset      = "Reset"
	LabelClear      = "Clear"
	LabelSaveScript = "Save Script…"
	LabelAttachDoc  = "Attach Document…"
	LabelChooseClip = "Choose Video…"
)

// Placeholder and status strings
const (
	PlaceholderDraft   = "Paste or write your draft scene here…"
	PlaceholderGenre   = "Genre"
	PlaceholderEmotion = "Emotion you intended to convey (e.g. Joy)"

	MsgDraftRequired   = "Enter draft text or attach a document before generating."
	MsgEmotionRequired = "Select a video and enter the emotion you intended to convey."
	MsgGenerating      = "Generating screenplay…"
	MsgAnalyzing       = "Analyzing video…"
	MsgNoClipSelected  = "No video selected"
	MsgNoDocAttached   = "No document attached"
	MsgScriptSaved     = "Script saved"
	MsgMatchSuccess    = "Matches your intent"
	MsgMatchMismatch   = "Differs from your intent"
)

// Layout sizing
const (
	WindowWidth  float32 = 900
	WindowHeight float32 = 640

	ResultMinHeight float32 = 220
)
