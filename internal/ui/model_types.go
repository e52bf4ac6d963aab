// internal/ui/model_types.go
package ui

// AppState represents the overall application state
type AppState string

const (
	StateSelecting  AppState = "SELECTING"
	StateConnecting AppState = "CONNECTING"
	StateReady      AppState = "READY"
)
