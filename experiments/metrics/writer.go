package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// AgentConfig describes one side of a match-up.
type AgentConfig struct {
	ID         int
	Kind       string // "random" or "greedy"
	Seed       uint64
	PieceDraws int
}

type GameRecord struct {
	ID     int
	Agent1 int // AgentConfig.ID
	Agent2 int // AgentConfig.ID
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates root/name/<timestamp> for one experiment run.
func NewWriter(root, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(root, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	header := []string{"id", "kind", "seed", "piece_draws"}
	rows := make([][]string, 0, len(configs))
	for _, config := range configs {
		rows = append(rows, []string{
			strconv.Itoa(config.ID),
			config.Kind,
			strconv.FormatUint(config.Seed, 10),
			strconv.Itoa(config.PieceDraws),
		})
	}
	return w.write("agent_configs.csv", header, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "match_id", "agent1", "agent2", "starting_player", "winner", "ending", "start_time", "end_time", "duration", "total_moves"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			record.MatchID,
			strconv.Itoa(record.Agent1),
			strconv.Itoa(record.Agent2),
			record.StartingPlayer,
			record.Winner,
			record.Ending,
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
			strconv.Itoa(record.TotalMoves),
		})
	}
	return w.write("game_records.csv", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := []string{"game", "match_id", "step", "player", "tier", "attempts", "captured", "duration", "aborted"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Game),
			record.MatchID,
			strconv.Itoa(record.Step),
			record.Player,
			record.Tier,
			strconv.Itoa(record.Attempts),
			strconv.FormatBool(record.Captured),
			record.Duration.String(),
			strconv.FormatBool(record.Aborted),
		})
	}
	return w.write("move_records.csv", header, rows)
}

func (w *Writer) write(file string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, file)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", file, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", file, err)
	}
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write %s rows: %w", file, err)
	}
	return nil
}
