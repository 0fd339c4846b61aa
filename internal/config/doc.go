package config

// Package config manages persistent application settings through the Fyne
// preferences API: the theme choice, service endpoints and the last used
// genre. An optional YAML file in the user config directory overrides the
// stored endpoints.
