package model

// Package model defines domain data structures used across the app: draft
// inputs, submission lifecycle state, and decoded service results. Structures
// are designed for direct binding in the UI and explicit state transitions.
