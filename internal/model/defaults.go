package model

// Shared defaults used by the command and its configuration loader.
const (
	AppName         = "wonders"
	DefaultLocale   = "en"
	DefaultSkin     = "default"
	DefaultLogLevel = "info"
	EnvPrefix       = "WONDERS"
)
