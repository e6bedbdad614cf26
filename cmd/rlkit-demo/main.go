// Command rlkit-demo prints one map, made by the generator chosen with
// -style, to stdout, for eyeballing generation output without a game
// attached.
package main

import (
	"flag"
	"fmt"
	"log"

	"rlkit/mapgen"
	"rlkit/rng"
	"rlkit/tile"
)

func main() {
	log.SetFlags(log.Lshortfile)

	width := flag.Int("width", 80, "map width")
	height := flag.Int("height", 30, "map height")
	seed := flag.Int64("seed", 1, "rng seed")
	style := flag.String("style", "bsp", "bsp, automata, or maze")
	flag.Parse()

	source := rng.Default(*seed)

	var grid *tile.Grid
	var err error

	switch *style {
	case "bsp":
		grid, _, err = mapgen.GenerateBSP(*width, *height, mapgen.BSPConfig{
			RoomMinWidth:  4,
			RoomMaxWidth:  10,
			RoomMinHeight: 4,
			RoomMaxHeight: 8,
			RoomPadding:   1,
			MaxRecursion:  8,
			Corridors:     mapgen.CorridorBSP,
			DrawDoors:     true,
		}, source)
	case "automata":
		grid, err = mapgen.GenerateAutomata(*width, *height, mapgen.AutomataConfig{
			FillProbability: 0.45,
			Iterations:      4,
			BirthLimit:      4,
			SurvivalLimit:   4,
			Smoothing:       true,
			ConnectRegions:  true,
		}, source)
	case "maze":
		grid, err = mapgen.GenerateMaze(*width, *height, source)
	default:
		log.Fatalf("unknown style %q", *style)
	}

	if err != nil {
		log.Fatal(err)
	}

	printGrid(grid)
}

func printGrid(grid *tile.Grid) {
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			fmt.Print(grid.At(x, y).String())
		}
		fmt.Println()
	}
}
