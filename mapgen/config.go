// Package mapgen generates tile.Grid dungeons using three strategies:
// BSP room-and-corridor, cellular automata caves, and perfect mazes.
package mapgen

import "errors"

// ErrInvalidConfig is returned when a config's fields are out of range.
var ErrInvalidConfig = errors.New("mapgen: invalid configuration")

// ErrNilParameter is returned when a generator is called with a nil
// rng.Source, matching spec's "null parameter" error discipline for the
// one required-pointer parameter left after Go's GC removes the rest of
// the C original's manual-lifetime handles.
var ErrNilParameter = errors.New("mapgen: nil parameter")

// CorridorStrategy selects how BSP-generated rooms are connected.
type CorridorStrategy int

const (
	// CorridorNone leaves rooms unconnected.
	CorridorNone CorridorStrategy = iota
	// CorridorSimple connects sibling rooms with an L-shaped carve
	// (no pathfinding), matching the original header's
	// rl_mapgen_bsp_connect_corridors.
	CorridorSimple
	// CorridorBSP connects sibling rooms by scoring a Dijkstra graph
	// from one room and carving along the cheapest path to the other,
	// biasing the route through existing doors and away from walls.
	CorridorBSP
	// CorridorRandomly connects randomly paired leaves anywhere in the
	// tree (not just siblings), then keeps only the largest connected
	// area, culling anything the random pairing left isolated.
	CorridorRandomly
)

// BSPConfig parameterizes GenerateBSP.
type BSPConfig struct {
	RoomMinWidth, RoomMaxWidth   int
	RoomMinHeight, RoomMaxHeight int
	RoomPadding                  int
	MaxRecursion                 int
	Corridors                    CorridorStrategy
	// RandomiseRoomLocation places each room at a random offset within
	// its leaf rather than centered; false reproduces the older,
	// simpler centered placement.
	RandomiseRoomLocation bool
	// DrawDoors places a Door tile instead of a Corridor tile where a
	// carve crosses a room's wall. Off leaves the threshold as a plain
	// Corridor tile.
	DrawDoors bool
}

// Validate checks a BSPConfig's invariants.
func (c BSPConfig) Validate() error {
	if c.RoomMinWidth <= 0 || c.RoomMaxWidth < c.RoomMinWidth {
		return ErrInvalidConfig
	}
	if c.RoomMinHeight <= 0 || c.RoomMaxHeight < c.RoomMinHeight {
		return ErrInvalidConfig
	}
	if c.RoomPadding < 0 {
		return ErrInvalidConfig
	}
	if c.MaxRecursion <= 0 {
		return ErrInvalidConfig
	}
	return nil
}

// AutomataConfig parameterizes GenerateAutomata.
type AutomataConfig struct {
	// FillProbability is the chance (0..1) a cell starts as Rock.
	FillProbability float64
	Iterations      int
	// BirthLimit is the wall-neighbour threshold above which a floor
	// cell becomes Rock.
	BirthLimit int
	// SurvivalLimit is the wall-neighbour threshold below which a Rock
	// cell becomes floor.
	SurvivalLimit int
	// Smoothing additionally culls single-cell wall/floor noise after
	// the main iterations (the teacher's cleanupIsolatedTiles pass).
	Smoothing bool
	// ConnectRegions stitches together disconnected caverns with
	// Dijkstra-biased corridors instead of leaving them isolated.
	ConnectRegions bool
	// CullUnconnected removes every region except the largest after
	// generation (only meaningful when ConnectRegions is false).
	CullUnconnected bool
	// FillBorder stamps Rock around the four edges of the grid after
	// the automata settles, so caverns never open directly onto the
	// map boundary.
	FillBorder bool
}

// Validate checks an AutomataConfig's invariants.
func (c AutomataConfig) Validate() error {
	if c.FillProbability < 0 || c.FillProbability > 1 {
		return ErrInvalidConfig
	}
	if c.Iterations < 0 {
		return ErrInvalidConfig
	}
	if c.BirthLimit < 0 || c.BirthLimit > 8 || c.SurvivalLimit < 0 || c.SurvivalLimit > 8 {
		return ErrInvalidConfig
	}
	return nil
}
