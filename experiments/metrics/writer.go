package metrics

import (
	"encoding/csv"
	"fmt"
	"io"
	"rbnim/game"
	"strconv"
	"time"
)

// Writer reports experiment results as CSV tables, each preceded by a
// "# name" line.
type Writer struct {
	out io.Writer
}

func NewWriter(out io.Writer) *Writer {
	return &Writer{out: out}
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	header := []string{"id", "kind", "depth", "evaluator", "goroutines", "pruning"}
	rows := make([][]string, 0, len(configs))
	for _, config := range configs {
		rows = append(rows, []string{
			strconv.Itoa(config.ID),
			config.Kind,
			config.Depth.String(),
			config.Evaluator,
			strconv.Itoa(config.Goroutines),
			strconv.FormatBool(config.Pruning),
		})
	}
	if err := w.writeTable("agent_configs", header, rows); err != nil {
		return fmt.Errorf("failed to write agent configs: %w", err)
	}
	return nil
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "experiment", "human_agent", "computer_agent", "variant", "red", "blue", "starting_player", "winner", "points", "moves", "start_time", "duration"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			record.ID.String(),
			record.Experiment,
			strconv.Itoa(record.Agents[game.Human]),
			strconv.Itoa(record.Agents[game.Computer]),
			record.Variant.String(),
			strconv.Itoa(record.Red),
			strconv.Itoa(record.Blue),
			record.StartingPlayer.String(),
			record.Winner.String(),
			strconv.Itoa(record.Points),
			strconv.Itoa(record.TotalMoves),
			record.StartTime.Format(time.RFC3339),
			record.Duration.String(),
		})
	}
	if err := w.writeTable("game_records", header, rows); err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}
	return nil
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := []string{"game", "step", "player", "move", "depth", "duration", "nodes", "leaves", "cutoffs"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			record.Game.String(),
			strconv.Itoa(record.Step),
			record.Player.String(),
			record.Move.String(),
			record.Depth.String(),
			record.Duration.String(),
			strconv.FormatInt(record.Nodes, 10),
			strconv.FormatInt(record.Leaves, 10),
			strconv.FormatInt(record.Cutoffs, 10),
		})
	}
	if err := w.writeTable("move_records", header, rows); err != nil {
		return fmt.Errorf("failed to write move records: %w", err)
	}
	return nil
}

func (w *Writer) writeTable(name string, header []string, rows [][]string) error {
	if _, err := fmt.Fprintf(w.out, "# %s\n", name); err != nil {
		return err
	}

	writer := csv.NewWriter(w.out)
	if err := writer.Write(header); err != nil {
		return err
	}
	if err := writer.WriteAll(rows); err != nil {
		return err
	}
	return writer.Error()
}
