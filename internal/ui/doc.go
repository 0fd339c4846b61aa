package ui

// Package ui contains the Fyne-based desktop user interface for the
// application. It wires user input to the submission services and renders
// generation and analysis results, the theme toggle, and settings.
