package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/lexiz/internal/engine"
)

// Evaluation is one recorded evaluation of a learner sentence.
type Evaluation struct {
	ID                string
	Word              string
	Sentence          string
	Status            engine.Verdict
	Explanation       string
	CorrectedSentence string
	CreatedAt         time.Time
}

// StatusCounts aggregates evaluation outcomes for the stats view.
type StatusCounts struct {
	Correct       int
	MostlyCorrect int
	Incorrect     int
}

// Total returns the number of recorded evaluations.
func (c StatusCounts) Total() int {
	return c.Correct + c.MostlyCorrect + c.Incorrect
}

// EvaluationRepo reads and writes evaluation history.
type EvaluationRepo struct {
	db *sql.DB
}

// Append records an evaluation. A missing ID is filled with a fresh UUID and
// a zero CreatedAt with the current time.
func (r *EvaluationRepo) Append(ctx context.Context, ev Evaluation) error {
	if ev.ID == "" {
		ev.ID = uuid.NewString()
	}
	if ev.CreatedAt.IsZero() {
		ev.CreatedAt = time.Now().UTC()
	}

	const query = `INSERT INTO evaluations (id, word, sentence, status, explanation, corrected, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		ev.ID, ev.Word, ev.Sentence, string(ev.Status), ev.Explanation, ev.CorrectedSentence, ev.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert evaluation: %w", err)
	}
	return nil
}

// Recent returns up to limit evaluations, newest first.
func (r *EvaluationRepo) Recent(ctx context.Context, limit int) ([]Evaluation, error) {
	const query = `SELECT id, word, sentence, status, explanation, corrected, created_at
		FROM evaluations ORDER BY created_at DESC, id LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("query evaluations: %w", err)
	}
	defer rows.Close()

	var evals []Evaluation
	for rows.Next() {
		var ev Evaluation
		var status string
		if err := rows.Scan(&ev.ID, &ev.Word, &ev.Sentence, &status, &ev.Explanation, &ev.CorrectedSentence, &ev.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan evaluation: %w", err)
		}
		ev.Status = engine.Verdict(status)
		evals = append(evals, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate evaluations: %w", err)
	}
	return evals, nil
}

// Counts aggregates evaluations by status.
func (r *EvaluationRepo) Counts(ctx context.Context) (StatusCounts, error) {
	const query = `SELECT status, COUNT(*) FROM evaluations GROUP BY status`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return StatusCounts{}, fmt.Errorf("count evaluations: %w", err)
	}
	defer rows.Close()

	var counts StatusCounts
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return StatusCounts{}, fmt.Errorf("scan count: %w", err)
		}
		switch engine.Verdict(status) {
		case engine.VerdictCorrect:
			counts.Correct = n
		case engine.VerdictMostlyCorrect:
			counts.MostlyCorrect = n
		case engine.VerdictIncorrect:
			counts.Incorrect = n
		}
	}
	if err := rows.Err(); err != nil {
		return StatusCounts{}, fmt.Errorf("iterate counts: %w", err)
	}
	return counts, nil
}

// DeleteAll clears the evaluation history.
func (r *EvaluationRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM evaluations`); err != nil {
		return fmt.Errorf("delete evaluations: %w", err)
	}
	return nil
}
