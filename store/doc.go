// Copyright (c) 2025 Berkay Karadag.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store is the persistence boundary: plain database/sql accessors for
users, polls, and votes over either the postgres or sqlite driver.

# Errors

Lookups that match no row return ErrNotFound. Inserts rejected by a
uniqueness constraint return ErrDuplicate; any other database error is
wrapped and propagates as an infrastructure failure, never as a domain
outcome.

# Batch access

The vote accessors are deliberately bulk-shaped: CountByChoiceForPolls and
SelectionsByVoterForPolls each issue exactly one query for an arbitrary set
of poll ids, so aggregating N polls costs a bounded number of queries
rather than N.
*/
package store
