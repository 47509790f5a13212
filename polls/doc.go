// Copyright (c) 2025 Berkay Karadag.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package polls is the application core: poll creation, vote casting, and
result aggregation.

# Vote casting

CastVote enforces, in order: the poll exists, the poll has not expired,
the choice belongs to the poll, and the voter has not voted before. The
last rule is decided by the storage-level uniqueness constraint on
(poll, user); when two concurrent casts race, the store accepts exactly
one and the loser observes ErrAlreadyVoted.

# Aggregation

AggregateMany computes results for any number of polls with a bounded
number of bulk queries. Expiry is derived from the poll's expiration
instant at aggregation time, never stored.

# Errors

Domain failures are sentinel errors (ErrPollNotFound, ErrPollExpired,
ErrChoiceNotFound, ErrAlreadyVoted, ErrUserNotFound, ErrInvalidPoll).
Anything else is an infrastructure failure and propagates unchanged.
*/
package polls
