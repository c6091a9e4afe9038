package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	nchess "github.com/corentings/chess/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/marcusbuffett/uciengine/internal/analysisstore"
	"github.com/marcusbuffett/uciengine/internal/archive"
	appcfg "github.com/marcusbuffett/uciengine/internal/config"
	"github.com/marcusbuffett/uciengine/internal/httpapi"
	"github.com/marcusbuffett/uciengine/internal/obslog"
	"github.com/marcusbuffett/uciengine/internal/preset"
	"github.com/marcusbuffett/uciengine/pkg/analysis"
	"github.com/marcusbuffett/uciengine/pkg/uci"
)

func main() {
	fen := flag.String("fen", "", "position FEN (empty: startpos)")
	moves := flag.String("moves", "", "space-separated UCI moves appended to the position")
	presetName := flag.String("preset", "", "engine preset name (default: ENGINE_DEFAULT_PRESET)")
	depth := flag.Int("depth", 0, "override search depth")
	movetime := flag.Int("movetime", 0, "override movetime in ms")
	flag.Parse()

	cfg, err := appcfg.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}
	if err := obslog.InitFromEnv(); err != nil {
		log.Fatalf("log init error: %v", err)
	}
	logger := obslog.L()

	catalog, err := loadCatalog(cfg.PresetsPath)
	if err != nil {
		log.Fatalf("presets error: %v", err)
	}
	name := *presetName
	if name == "" {
		name = cfg.DefaultPreset
	}
	p, ok := catalog.Get(name)
	if !ok {
		log.Fatalf("unknown preset %q (have: %s)", name, strings.Join(catalog.Names(), ", "))
	}

	job := p.Job()
	if *depth > 0 {
		job.GoOption("depth", *depth)
	}
	if *movetime > 0 {
		job.GoOption("movetime", *movetime)
	}

	if *fen != "" {
		if _, err := nchess.FEN(*fen); err != nil {
			log.Fatalf("invalid fen %q: %v", *fen, err)
		}
		job.PosFen(*fen)
	} else {
		job.PosStartpos()
	}
	if *moves != "" {
		job.PosMoves(strings.Fields(*moves)...)
	}

	analysisID := uuid.NewString()

	var store *analysisstore.Store
	if cfg.RedisURL != "" {
		store, err = analysisstore.New(cfg.RedisURL, time.Duration(cfg.SnapshotTTLSec)*time.Second)
		if err != nil {
			log.Fatalf("snapshot store error: %v", err)
		}
		defer store.Close()
	}

	var repo *archive.Repository
	if cfg.DatabaseURL != "" {
		repo, err = archive.NewRepository(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("archive error: %v", err)
		}
		defer repo.Close()
	}

	if store != nil && cfg.HTTPAddr != "" {
		api := httpapi.New(store)
		go func() {
			if err := api.Listen(cfg.HTTPAddr); err != nil {
				logger.Error("http api", zap.Error(err))
			}
		}()
	}

	// The record is shared between the reader goroutine (via the line
	// handler) and this goroutine, which owns Done.
	var mu sync.Mutex
	rec := analysis.NewInfo()

	handler := func(line string) {
		mu.Lock()
		defer mu.Unlock()
		if err := rec.Parse(line); err != nil {
			return // already logged at detection
		}
		if store != nil {
			if err := store.Save(context.Background(), analysisID, rec); err != nil {
				logger.Warn("save snapshot", zap.Error(err))
			}
		}
	}

	engine, err := uci.NewEngine(cfg.EnginePath, uci.WithLineHandler(handler))
	if err != nil {
		log.Fatalf("engine error: %v", err)
	}
	defer engine.Close()

	started := time.Now()
	result, err := engine.Go(job)
	if err != nil {
		log.Fatalf("go error: %v", err)
	}

	mu.Lock()
	rec.Done = true
	final := rec
	mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if store != nil {
		if err := store.Save(ctx, analysisID, final); err != nil {
			logger.Warn("save final snapshot", zap.Error(err))
		}
	}
	if repo != nil {
		archRec := archive.Record{
			AnalysisID: analysisID,
			EnginePath: cfg.EnginePath,
			FEN:        *fen,
			Bestmove:   result.Bestmove,
			Ponder:     result.Ponder,
			StartedAt:  started,
			EndedAt:    time.Now(),
		}
		if err := repo.SaveAnalysis(ctx, archRec, final); err != nil {
			logger.Warn("archive analysis", zap.Error(err))
		}
	}

	out, err := final.ToJSON()
	if err != nil {
		log.Fatalf("serialize error: %v", err)
	}
	fmt.Printf("analysis %s\n", analysisID)
	fmt.Println(string(out))
	logger.Info("analysis complete",
		zap.String("id", analysisID),
		zap.String("bestmove", result.Bestmove),
		zap.String("ponder", result.Ponder),
		zap.Duration("took", time.Since(started)),
	)
}

func loadCatalog(path string) (*preset.Catalog, error) {
	if path != "" {
		return preset.LoadFile(path)
	}
	return preset.LoadDefault()
}
