package theme

import "os"

// Nerd Font icons
const (
	nerdIconSuccess     = "󰄬" // md-check (U+F012C)
	nerdIconError       = "" // cod-error (U+EA87)
	nerdIconWarning     = "" // fa-warning (U+F071)
	nerdIconArrow       = "󰁔" // md-arrow_right (U+F0054)
	nerdIconFilter      = "󱣬" // md-filter_check (U+F18EC)
	nerdIconBlacklisted = "󰒃" // md-shield_off (U+F0483)
	nerdIconDebug       = "" // cod-debug (U+EAD8)
)

// ASCII fallback icons
const (
	asciiIconSuccess     = "✓"
	asciiIconError       = "✗"
	asciiIconWarning     = "!"
	asciiIconArrow       = ">"
	asciiIconFilter      = "/"
	asciiIconBlacklisted = "[X]"
	asciiIconDebug       = "[D]"
)

// IconUnlimited marks a slot count with no limit. It is the same in both
// icon sets.
const IconUnlimited = "∞"

var (
	IconSuccess     string
	IconError       string
	IconWarning     string
	IconArrow       string
	IconFilter      string
	IconBlacklisted string
	IconDebug       string
)

func init() {
	useASCII := os.Getenv("JOBSLOTS_ICONS") == "ascii"
	if !useASCII && os.Getenv("JOBSLOTS_ICONS") == "" {
		useASCII = loadTUIConfig().Icons == "ascii"
	}
	SetASCIIIcons(useASCII)
}

// SetASCIIIcons switches between the Nerd Font and ASCII icon sets.
func SetASCIIIcons(ascii bool) {
	if ascii {
		IconSuccess = asciiIconSuccess
		IconError = asciiIconError
		IconWarning = asciiIconWarning
		IconArrow = asciiIconArrow
		IconFilter = asciiIconFilter
		IconBlacklisted = asciiIconBlacklisted
		IconDebug = asciiIconDebug
		return
	}
	IconSuccess = nerdIconSuccess
	IconError = nerdIconError
	IconWarning = nerdIconWarning
	IconArrow = nerdIconArrow
	IconFilter = nerdIconFilter
	IconBlacklisted = nerdIconBlacklisted
	IconDebug = nerdIconDebug
}
