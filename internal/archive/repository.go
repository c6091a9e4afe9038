// Package archive persists completed analyses to Postgres.
package archive

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/lib/pq"

	"github.com/marcusbuffett/uciengine/pkg/analysis"
)

type Repository struct {
	db *sql.DB
}

func NewRepository(databaseURL string) (*Repository, error) {
	if strings.TrimSpace(databaseURL) == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(8)
	db.SetMaxIdleConns(4)
	db.SetConnMaxLifetime(30 * time.Minute)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}
	return &Repository{db: db}, nil
}

func (r *Repository) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}

// Record is one archived analysis row.
type Record struct {
	AnalysisID string
	EnginePath string
	FEN        string
	Bestmove   string
	Ponder     string
	StartedAt  time.Time
	EndedAt    time.Time
}

// SaveAnalysis upserts the final state of an analysis keyed by its id.
func (r *Repository) SaveAnalysis(ctx context.Context, rec Record, final analysis.Info) error {
	if r == nil || r.db == nil {
		return nil
	}

	snapshot, err := final.ToJSON()
	if err != nil {
		return err
	}
	pv, _ := final.PV()

	scoreKind := "cp"
	if final.Score.Kind == analysis.ScoreMate {
		scoreKind = "mate"
	}

	q := `INSERT INTO analyses (
	    analysis_id, engine_path, fen,
	    bestmove, ponder, pv,
	    depth, score_kind, score_value, nodes, time_ms,
	    snapshot, started_at, ended_at
	  ) VALUES (
	    $1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14
	  ) ON CONFLICT (analysis_id) DO UPDATE SET
	    bestmove=EXCLUDED.bestmove,
	    ponder=EXCLUDED.ponder,
	    pv=EXCLUDED.pv,
	    depth=EXCLUDED.depth,
	    score_kind=EXCLUDED.score_kind,
	    score_value=EXCLUDED.score_value,
	    nodes=EXCLUDED.nodes,
	    time_ms=EXCLUDED.time_ms,
	    snapshot=EXCLUDED.snapshot,
	    ended_at=EXCLUDED.ended_at`

	_, err = r.db.ExecContext(ctx, q,
		rec.AnalysisID,
		rec.EnginePath,
		rec.FEN,
		rec.Bestmove,
		rec.Ponder,
		pv,
		final.Depth,
		scoreKind,
		final.Score.Value,
		final.Nodes,
		final.Time,
		snapshot,
		rec.StartedAt,
		rec.EndedAt,
	)
	if err != nil {
		return fmt.Errorf("save analysis: %w", err)
	}
	return nil
}

// LoadSnapshot returns the stored snapshot JSON for an analysis id.
func (r *Repository) LoadSnapshot(ctx context.Context, analysisID string) ([]byte, error) {
	var raw []byte
	err := r.db.QueryRowContext(ctx,
		`SELECT snapshot FROM analyses WHERE analysis_id = $1`, analysisID,
	).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load analysis: %w", err)
	}
	return raw, nil
}
