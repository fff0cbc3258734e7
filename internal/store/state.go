package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// StateKey is the single key the progress snapshot is stored under.
// Kept from the web version so an exported snapshot stays recognizable.
const StateKey = "kadpoly-ai-progress"

// Course status values.
const (
	StatusNotStarted = "not-started"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
)

// UserProgress is the learner's overall progress record.
type UserProgress struct {
	Level            int    `json:"level"`
	XP               int    `json:"xp"`
	XPToNext         int    `json:"xpToNext"`
	TotalXP          int    `json:"totalXp"`
	CoursesCompleted int    `json:"coursesCompleted"`
	TotalCourses     int    `json:"totalCourses"`
	AverageScore     int    `json:"averageScore"`
	StudyStreak      int    `json:"studyStreak"`
	Achievements     int    `json:"achievements"`
	LastStudyDate    string `json:"lastStudyDate"`
	QuestionsAsked   int    `json:"questionsAsked"`
}

// CourseProgress is the per-course progress record.
type CourseProgress struct {
	Name             string `json:"name"`
	Progress         int    `json:"progress"`
	Score            *int   `json:"score"`
	Status           string `json:"status"`
	TimeSpent        int    `json:"timeSpent"`
	QuizzesCompleted int    `json:"quizzesCompleted"`
}

// Achievement is an unlocked achievement record.
type Achievement struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	Color       string    `json:"color"`
	UnlockedAt  time.Time `json:"unlockedAt"`
}

// DayActivity is one bucket of the Mon..Sun weekly activity histogram.
type DayActivity struct {
	Day     string  `json:"day"`
	Hours   float64 `json:"hours"`
	Quizzes int     `json:"quizzes"`
}

// State is the full serialized snapshot of learner progress.
type State struct {
	UserProgress   UserProgress     `json:"userProgress"`
	CourseProgress []CourseProgress `json:"courseProgress"`
	Achievements   []Achievement    `json:"achievements"`
	WeeklyActivity []DayActivity    `json:"weeklyActivity"`
}

// StateRepo persists the progress snapshot under a single key.
type StateRepo interface {
	// Load returns the saved state, or nil if none exists.
	// A corrupt blob is reported as an error; callers fall back to defaults.
	Load(ctx context.Context) (*State, error)

	// Save overwrites the saved state with the given snapshot.
	Save(ctx context.Context, state *State) error

	// Clear deletes the saved state.
	Clear(ctx context.Context) error
}

// stateRepo implements StateRepo over the progress_state table.
type stateRepo struct {
	db *sql.DB
}

func (r *stateRepo) Load(ctx context.Context) (*State, error) {
	var blob string
	err := r.db.QueryRowContext(ctx,
		`SELECT data FROM progress_state WHERE key = ?`, StateKey,
	).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query state: %w", err)
	}

	var state State
	if err := json.Unmarshal([]byte(blob), &state); err != nil {
		return nil, fmt.Errorf("unmarshal state: %w", err)
	}
	return &state, nil
}

func (r *stateRepo) Save(ctx context.Context, state *State) error {
	blob, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO progress_state (key, data, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		StateKey, string(blob), time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("save state: %w", err)
	}
	return nil
}

func (r *stateRepo) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM progress_state WHERE key = ?`, StateKey)
	if err != nil {
		return fmt.Errorf("clear state: %w", err)
	}
	return nil
}
