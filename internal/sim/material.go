package sim

import "fmt"

// Material identifies the substance held by one grid cell.
type Material uint8

const (
	Air Material = iota
	Dirt
	Wood
	Stone
	Fire
	Lava
	Water
	Acid
	CharacterMark
	Grass
	HomeInactive
	HomeActive
	DarkStone
	Indestructible

	materialCount
)

var materialNames = [materialCount]string{
	"air", "dirt", "wood", "stone", "fire", "lava", "water", "acid",
	"character", "grass", "home-inactive", "home-active", "dark-stone", "indestructible",
}

// NumMaterials is the size of the material registry.
const NumMaterials = int(materialCount)

func (m Material) String() string {
	if !m.Valid() {
		return fmt.Sprintf("material(%d)", uint8(m))
	}
	return materialNames[m]
}

// Valid reports whether m belongs to the registry.
func (m Material) Valid() bool { return m < materialCount }

// Walkable reports whether a character may occupy a cell holding m.
// Only Air and an unbuilt home are open.
func (m Material) Walkable() bool { return m == Air || m == HomeInactive }

// Corrodible reports whether acid eats through m.
func (m Material) Corrodible() bool {
	return m != Air && m != Acid && m != Indestructible
}

// Sanitize maps an out-of-registry id to Air. Development builds
// (tag vixeldebug) panic instead.
func Sanitize(m Material) Material {
	if m.Valid() {
		return m
	}
	assertf("unknown material id %d", uint8(m))
	return Air
}
