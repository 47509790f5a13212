// Copyright (c) 2025 Berkay Karadag.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/berkayk/pollhub/models"
)

type VoteStore struct {
	db *sql.DB
}

func NewVoteStore(db *sql.DB) *VoteStore {
	return &VoteStore{db: db}
}

// Insert records a vote. Returns ErrDuplicate when the (poll, user)
// uniqueness constraint rejects the row - the storage layer, not an
// application-level check, decides the winner of concurrent casts.
func (s *VoteStore) Insert(ctx context.Context, vote *models.Vote) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO votes (id, poll_id, choice_id, user_id, cast_at)
		VALUES ($1, $2, $3, $4, $5)
	`, vote.ID, vote.PollID, vote.ChoiceID, vote.UserID, vote.CastAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to insert vote: %w", err)
	}
	return nil
}

// CountByChoiceForPolls returns per-choice vote counts for every poll in
// pollIDs with a single GROUP BY query: pollID -> choiceID -> count.
// Choices with zero votes are simply absent.
func (s *VoteStore) CountByChoiceForPolls(ctx context.Context, pollIDs []string) (map[string]map[string]int64, error) {
	counts := make(map[string]map[string]int64)
	if len(pollIDs) == 0 {
		return counts, nil
	}

	args := make([]interface{}, len(pollIDs))
	for i, id := range pollIDs {
		args[i] = id
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT poll_id, choice_id, COUNT(*)
		FROM votes
		WHERE poll_id IN (`+placeholders(1, len(pollIDs))+`)
		GROUP BY poll_id, choice_id
	`, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to count votes: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var pollID, choiceID string
		var n int64
		if err := rows.Scan(&pollID, &choiceID, &n); err != nil {
			return nil, fmt.Errorf("failed to scan vote count: %w", err)
		}
		if counts[pollID] == nil {
			counts[pollID] = make(map[string]int64)
		}
		counts[pollID][choiceID] = n
	}
	return counts, rows.Err()
}

// SelectionsByVoterForPolls returns the voter's chosen choice per poll for
// every poll in pollIDs with a single query: pollID -> choiceID.
func (s *VoteStore) SelectionsByVoterForPolls(ctx context.Context, userID string, pollIDs []string) (map[string]string, error) {
	selections := make(map[string]string)
	if len(pollIDs) == 0 {
		return selections, nil
	}

	args := make([]interface{}, 0, len(pollIDs)+1)
	args = append(args, userID)
	for _, id := range pollIDs {
		args = append(args, id)
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT poll_id, choice_id
		FROM votes
		WHERE user_id = $1 AND poll_id IN (`+placeholders(2, len(pollIDs))+`)
	`, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query voter selections: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var pollID, choiceID string
		if err := rows.Scan(&pollID, &choiceID); err != nil {
			return nil, fmt.Errorf("failed to scan voter selection: %w", err)
		}
		selections[pollID] = choiceID
	}
	return selections, rows.Err()
}

// CountByUser returns how many votes the user has cast in total.
func (s *VoteStore) CountByUser(ctx context.Context, userID string) (int64, error) {
	var n int64
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM votes WHERE user_id = $1`, userID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count votes: %w", err)
	}
	return n, nil
}
