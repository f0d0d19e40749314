package sim

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

func (c RGB) Mul(k uint8) RGB {
	return RGB{
		R: uint8((uint16(c.R) * uint16(k)) / 255),
		G: uint8((uint16(c.G) * uint16(k)) / 255),
		B: uint8((uint16(c.B) * uint16(k)) / 255),
	}
}

// Palette holds the display and level-image colour of every material.
var Palette = [NumMaterials]RGB{
	Air:            {R: 0, G: 0, B: 0},
	Dirt:           {R: 116, G: 63, B: 57},
	Wood:           {R: 230, G: 177, B: 133},
	Stone:          {R: 100, G: 100, B: 100},
	Fire:           {R: 228, G: 59, B: 68},
	Lava:           {R: 247, G: 118, B: 34},
	Water:          {R: 0, G: 149, B: 233},
	Acid:           {R: 99, G: 199, B: 77},
	CharacterMark:  {R: 182, G: 83, B: 212},
	Grass:          {R: 62, G: 137, B: 72},
	HomeInactive:   {R: 102, G: 11, B: 111},
	HomeActive:     {R: 210, G: 66, B: 210},
	DarkStone:      {R: 84, G: 84, B: 84},
	Indestructible: {R: 60, G: 60, B: 135},
}

// Color returns the palette colour of m; unknown ids render as Air.
func (m Material) Color() RGB {
	return Palette[Sanitize(m)]
}

// MaterialForColor finds the material painted with c in level images.
func MaterialForColor(c RGB) (Material, bool) {
	for i, p := range Palette {
		if p == c {
			return Material(i), true
		}
	}
	return Air, false
}
