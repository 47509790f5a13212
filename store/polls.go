// Copyright (c) 2025 Berkay Karadag.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/berkayk/pollhub/models"
)

type PollStore struct {
	db *sql.DB
}

func NewPollStore(db *sql.DB) *PollStore {
	return &PollStore{db: db}
}

// Create inserts a poll together with its choices in one transaction.
// Choices exist only as part of their poll; they are never added later.
func (s *PollStore) Create(ctx context.Context, poll *models.Poll) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO polls (id, question, created_by, created_at, expires_at)
		VALUES ($1, $2, $3, $4, $5)
	`, poll.ID, poll.Question, poll.CreatedBy, poll.CreatedAt, poll.ExpiresAt)
	if err != nil {
		return fmt.Errorf("failed to insert poll: %w", err)
	}

	for _, choice := range poll.Choices {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO choices (id, poll_id, text, position)
			VALUES ($1, $2, $3, $4)
		`, choice.ID, choice.PollID, choice.Text, choice.Position)
		if err != nil {
			return fmt.Errorf("failed to insert choice: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit poll: %w", err)
	}
	return nil
}

// FindByID loads a poll and its choices. Returns ErrNotFound if absent.
func (s *PollStore) FindByID(ctx context.Context, id string) (*models.Poll, error) {
	var p models.Poll
	err := s.db.QueryRowContext(ctx, `
		SELECT id, question, created_by, created_at, expires_at
		FROM polls WHERE id = $1
	`, id).Scan(&p.ID, &p.Question, &p.CreatedBy, &p.CreatedAt, &p.ExpiresAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query poll: %w", err)
	}

	polls := []models.Poll{p}
	if err := s.attachChoices(ctx, polls); err != nil {
		return nil, err
	}
	return &polls[0], nil
}

// List returns one page of polls, newest first, plus the total poll count.
func (s *PollStore) List(ctx context.Context, page, size int) ([]models.Poll, int64, error) {
	return s.listPage(ctx, `
		SELECT id, question, created_by, created_at, expires_at
		FROM polls
		ORDER BY created_at DESC, id
		LIMIT $1 OFFSET $2
	`, `SELECT COUNT(*) FROM polls`, nil, page, size)
}

// ListCreatedBy returns one page of polls created by userID, newest first.
func (s *PollStore) ListCreatedBy(ctx context.Context, userID string, page, size int) ([]models.Poll, int64, error) {
	return s.listPage(ctx, `
		SELECT id, question, created_by, created_at, expires_at
		FROM polls
		WHERE created_by = $1
		ORDER BY created_at DESC, id
		LIMIT $2 OFFSET $3
	`, `SELECT COUNT(*) FROM polls WHERE created_by = $1`, &userID, page, size)
}

// ListVotedBy returns one page of polls the user has voted in, newest first.
func (s *PollStore) ListVotedBy(ctx context.Context, userID string, page, size int) ([]models.Poll, int64, error) {
	return s.listPage(ctx, `
		SELECT p.id, p.question, p.created_by, p.created_at, p.expires_at
		FROM polls p
		JOIN votes v ON v.poll_id = p.id
		WHERE v.user_id = $1
		ORDER BY p.created_at DESC, p.id
		LIMIT $2 OFFSET $3
	`, `SELECT COUNT(*) FROM votes WHERE user_id = $1`, &userID, page, size)
}

// CountCreatedBy returns how many polls the user has created.
func (s *PollStore) CountCreatedBy(ctx context.Context, userID string) (int64, error) {
	var n int64
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM polls WHERE created_by = $1`, userID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count polls: %w", err)
	}
	return n, nil
}

func (s *PollStore) listPage(ctx context.Context, pageQuery, countQuery string, userID *string, page, size int) ([]models.Poll, int64, error) {
	var total int64
	countArgs := []interface{}{}
	pageArgs := []interface{}{}
	if userID != nil {
		countArgs = append(countArgs, *userID)
		pageArgs = append(pageArgs, *userID)
	}
	pageArgs = append(pageArgs, size, page*size)

	if err := s.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count polls: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, pageQuery, pageArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query polls: %w", err)
	}
	defer rows.Close()

	polls := []models.Poll{}
	for rows.Next() {
		var p models.Poll
		if err := rows.Scan(&p.ID, &p.Question, &p.CreatedBy, &p.CreatedAt, &p.ExpiresAt); err != nil {
			return nil, 0, fmt.Errorf("failed to scan poll: %w", err)
		}
		polls = append(polls, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	if err := s.attachChoices(ctx, polls); err != nil {
		return nil, 0, err
	}
	return polls, total, nil
}

// attachChoices bulk-loads the choices for every poll in polls with a
// single IN query and attaches them in display order.
func (s *PollStore) attachChoices(ctx context.Context, polls []models.Poll) error {
	if len(polls) == 0 {
		return nil
	}

	args := make([]interface{}, len(polls))
	index := make(map[string]int, len(polls))
	for i := range polls {
		args[i] = polls[i].ID
		index[polls[i].ID] = i
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, poll_id, text, position
		FROM choices
		WHERE poll_id IN (`+placeholders(1, len(polls))+`)
		ORDER BY poll_id, position
	`, args...)
	if err != nil {
		return fmt.Errorf("failed to query choices: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var c models.Choice
		if err := rows.Scan(&c.ID, &c.PollID, &c.Text, &c.Position); err != nil {
			return fmt.Errorf("failed to scan choice: %w", err)
		}
		if i, ok := index[c.PollID]; ok {
			polls[i].Choices = append(polls[i].Choices, c)
		}
	}
	return rows.Err()
}
