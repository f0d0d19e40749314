package game

const WindowTitle = "Vixel"

// Audio mix.
const (
	MusicVolume = 0.08
	// MaxVoicesPerSound limits overlapping copies of one sound effect.
	MaxVoicesPerSound = 2
)
