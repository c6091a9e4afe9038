// enginecheck spawns the configured engine, runs a depth-1 search from
// the starting position and reports the answer. A quick deployment probe.
package main

import (
	"log"
	"os"
	"time"

	"github.com/marcusbuffett/uciengine/internal/obslog"
	"github.com/marcusbuffett/uciengine/pkg/uci"
)

func main() {
	enginePath := os.Getenv("ENGINE_PATH")
	if enginePath == "" {
		log.Fatal("ENGINE_PATH is required")
	}
	if err := obslog.InitFromEnv(); err != nil {
		log.Fatalf("log init error: %v", err)
	}

	engine, err := uci.NewEngine(enginePath)
	if err != nil {
		log.Fatalf("spawn error: %v", err)
	}
	defer engine.Close()

	job := uci.NewGoJob().
		PosStartpos().
		GoOption("depth", 1)

	start := time.Now()
	result, err := engine.Go(job)
	if err != nil {
		log.Fatalf("go error: %v", err)
	}
	if result.Bestmove == "" {
		log.Fatalf("engine produced no bestmove (output ended early)")
	}
	log.Printf("engine ok: bestmove=%s ponder=%s took=%s", result.Bestmove, result.Ponder, time.Since(start))
}
