package types

import "fmt"

type TerrainType int

const (
	TerrainLand TerrainType = iota
	TerrainRoad
	TerrainWater
	TerrainDirtTrack
	TerrainForest
)

var terrainNames = map[TerrainType]string{
	TerrainLand:      "land",
	TerrainRoad:      "road",
	TerrainWater:     "water",
	TerrainDirtTrack: "dirt_track",
	TerrainForest:    "forest",
}

func (t TerrainType) String() string {
	if name, ok := terrainNames[t]; ok {
		return name
	}
	return fmt.Sprintf("terrain(%d)", int(t))
}

func (t TerrainType) Valid() bool {
	_, ok := terrainNames[t]
	return ok
}

// ParseTerrain maps a catalog name to its terrain type.
func ParseTerrain(name string) (TerrainType, error) {
	for t, n := range terrainNames {
		if n == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown terrain %q", name)
}

// MarshalText makes terrain types usable as JSON object keys,
// so adjacency maps serialize with readable names instead of ints.
func (t TerrainType) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("invalid terrain %d", int(t))
	}
	return []byte(t.String()), nil
}

func (t *TerrainType) UnmarshalText(data []byte) error {
	parsed, err := ParseTerrain(string(data))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
