package tui

// Color constants for the TaskPilot TUI theme
const (
	// Base Colors
	ColorAppBackground  = ""        // Use terminal default background
	ColorCardBackground = "#0B1220" // Dark navy card
	ColorBorder         = "#3A3F55" // Grey-blue

	// Text Colors
	ColorPrimaryText   = "#E6EAF2" // Field labels, user input, titles
	ColorSecondaryText = "#9FB4D6" // Muted descriptions and metadata
	ColorDisabledText  = "#6D7383" // Disabled/muted text
	ColorPlaceholder   = "#94A3B8" // Form placeholders
	ColorHelpText      = "240"     // Dark grey for help text

	// Accent Colors
	ColorAccentMain   = "#0EA5A4" // Headers, active borders
	ColorAccentBright = "#6EE7B7" // Highlights, selected row

	// State Colors
	ColorError   = "#EF4444" // Validation errors
	ColorSuccess = "#22C55E" // Success, confirmations
	ColorWarning = "#F59E0B" // Warnings

	// Urgency Colors (age scale on the 2/2/1 segments)
	ColorUrgencyGreen  = "#2ECC71"
	ColorUrgencyOrange = "#F39C12"
	ColorUrgencyRed    = "#E74C3C"
)
