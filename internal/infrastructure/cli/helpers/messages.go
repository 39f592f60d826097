package helpers

// Error messages
const (
	ErrDoctorServiceUnavailable = "doctor service unavailable"
	ErrConfigLoaderUnavailable  = "config loader unavailable"
)

// Success messages
const (
	MsgConfigurationValid = "Configuration valid"
	MsgNoHistoryRecorded  = "No history recorded yet."
	MsgHistoryCleared     = "Chat history cleared"
)
