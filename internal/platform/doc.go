package platform

// Package platform contains OS/filesystem integration: directory and file
// helpers for preview staging, script export, and opening saved files with
// the default system application.
