package main

import (
	"fmt"
	"os"
	"time"

	"github.com/sheikhrachel/go-lifeboard/model"
	"github.com/sheikhrachel/go-lifeboard/utils"
)

// newSession builds the session described by the configuration
func newSession(config utils.Config) *model.Session {
	return model.NewSession(model.SessionOptions{
		Columns:   config.Columns,
		Rows:      config.Rows,
		Workers:   config.Workers,
		Density:   config.RandomDensity,
		NoiseSeed: config.NoiseSeed,
	})
}

// displayGameInfo shows the initial game information
func displayGameInfo(config utils.Config, session *model.Session) {
	grid := session.Grid()
	fmt.Printf("Grid: %dx%d | Workers: %d | Initial living cells: %d\n",
		grid.Columns(), grid.Rows(), config.Workers, grid.CountLivingCells())
	fmt.Println("Press Ctrl+C to exit gracefully")
	fmt.Println()
}

// displayGameStatus shows the current game status
func displayGameStatus(session *model.Session, stats *utils.Stats) {
	grid := session.Grid()
	livingCells := grid.CountLivingCells()
	density := float64(livingCells) / float64(grid.Columns()*grid.Rows()) * 100

	boundingInfo := ""
	if b, ok := grid.ActiveBounds(); ok {
		boundingInfo = fmt.Sprintf(" | Bounding box: %d cells", b.Area())
	}

	fmt.Printf("Gen: %d | Living: %d | Density: %.1f%% | Status: %s%s\n",
		session.Generation(), livingCells, density, session.Status(), boundingInfo)
	fmt.Printf("Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, stats.Runtime().Seconds())
	fmt.Println()
}

// runHeadless seeds the board, starts it and ticks at the configured frame
// rate until stop fires, the board dies out or MaxGenerations is reached
func runHeadless(
	session *model.Session,
	config utils.Config,
	renderer *model.TerminalRenderer,
	stop <-chan os.Signal,
) *utils.Stats {
	stats := utils.NewStats()

	if session.Grid().CountLivingCells() == 0 {
		if err := session.Apply(model.CommandRandomize); err != nil {
			fmt.Println("Error seeding board:", err)
		}
	}
	displayGameInfo(config, session)

	if err := session.Apply(model.CommandStart); err != nil {
		fmt.Println("Error starting session:", err)
		return stats
	}

	ticker := time.NewTicker(config.FrameRate)
	defer ticker.Stop()

	lastFrameTime := time.Now()
	for {
		renderer.Clear()
		displayGameStatus(session, stats)
		renderer.Display(session.Grid())

		if config.MaxGenerations > 0 && session.Generation() >= config.MaxGenerations {
			fmt.Printf("\n🏁 Reached maximum generations limit (%d)\n", config.MaxGenerations)
			return stats
		}
		if session.Status() == model.StatusExtinct {
			fmt.Println("\nAll cells are dead")
			return stats
		}

		select {
		case <-stop:
			fmt.Println("\n🛑 Shutting down gracefully...")
			return stats
		case frameStart := <-ticker.C:
			session.Tick()
			stats.Update(session.Generation(), session.Grid().CountLivingCells(), frameStart.Sub(lastFrameTime))
			lastFrameTime = frameStart
		}
	}
}
