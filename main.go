package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/sheikhrachel/go-lifeboard/model"
	"github.com/sheikhrachel/go-lifeboard/utils"
	"github.com/sheikhrachel/go-lifeboard/view"
)

var (
	configPath = flag.String("config", "config.json", "Path to the JSON configuration file")
	headless   = flag.Bool("headless", false, "Run in the terminal without a window")
)

func main() {
	flag.Parse()

	// Load configuration - fallback to defaults if file doesn't exist
	config, err := loadConfigOrDefault(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *headless {
		config.Headless = true
	}

	session := newSession(config)

	if !config.Headless {
		if err := view.Run(session, config); err != nil {
			log.Fatal(err)
		}
		return
	}

	// Handle Ctrl+C gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	stats := runHeadless(session, config, model.NewTerminalRenderer(), sigChan)
	fmt.Println("Final stats:", stats.Summary())
}

// loadConfigOrDefault reads the configuration file, using defaults when it
// does not exist. A file that exists but is invalid is an error
func loadConfigOrDefault(path string) (utils.Config, error) {
	config, err := utils.LoadConfig(path)
	if err == nil {
		return config, nil
	}
	if _, statErr := os.Stat(path); os.IsNotExist(statErr) {
		fmt.Printf("Using default configuration (%s not found)\n", path)
		return utils.DefaultConfig(), nil
	}
	return config, err
}
