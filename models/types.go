package models

import "time"

// Role name constants
const (
	RoleUser  = "ROLE_USER"
	RoleAdmin = "ROLE_ADMIN"
)

// Poll constraints
const (
	MinChoices     = 2
	MaxChoices     = 6
	MaxPollDays    = 7
	MaxQuestionLen = 140
)

// Pagination defaults
const (
	DefaultPageSize = 30
	MaxPageSize     = 50
)

// Request types

type SignUpRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	UsernameOrEmail string `json:"username_or_email"`
	Password        string `json:"password"`
}

type ChoiceRequest struct {
	Text string `json:"text"`
}

// PollLength is the requested voting window, relative to creation time.
type PollLength struct {
	Days  int `json:"days"`
	Hours int `json:"hours"`
}

type CreatePollRequest struct {
	Question   string          `json:"question"`
	Choices    []ChoiceRequest `json:"choices"`
	PollLength PollLength      `json:"poll_length"`
}

type VoteRequest struct {
	ChoiceID string `json:"choice_id"`
}

// Response types

type JwtAuthenticationResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type ApiResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type UserSummary struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

type UserProfile struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Name      string    `json:"name"`
	JoinedAt  time.Time `json:"joined_at"`
	PollCount int64     `json:"poll_count"`
	VoteCount int64     `json:"vote_count"`
}

type UserIdentityAvailability struct {
	Available bool `json:"available"`
}

type ChoiceResponse struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	VoteCount int64  `json:"vote_count"`
}

type PollResponse struct {
	ID                 string           `json:"id"`
	Question           string           `json:"question"`
	CreatedBy          UserSummary      `json:"created_by"`
	Choices            []ChoiceResponse `json:"choices"`
	CreationDateTime   time.Time        `json:"creation_date_time"`
	ExpirationDateTime time.Time        `json:"expiration_date_time"`
	ExpiresIn          string           `json:"expires_in"`
	IsExpired          bool             `json:"is_expired"`
	SelectedChoice     *string          `json:"selected_choice,omitempty"`
	TotalVotes         int64            `json:"total_votes"`
}

type PagedResponse struct {
	Content       []PollResponse `json:"content"`
	Page          int            `json:"page"`
	Size          int            `json:"size"`
	TotalElements int64          `json:"total_elements"`
	TotalPages    int64          `json:"total_pages"`
	Last          bool           `json:"last"`
}

// Domain types

type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never expose in JSON
	CreatedAt    time.Time `json:"created_at"`
}

// Identity is the resolved caller for one request: a user plus its role
// names. Core operations take it as an explicit argument; a nil *Identity
// means the request is anonymous.
type Identity struct {
	ID       string
	Name     string
	Username string
	Email    string
	Roles    []string
}

func (id *Identity) HasRole(role string) bool {
	if id == nil {
		return false
	}
	for _, r := range id.Roles {
		if r == role {
			return true
		}
	}
	return false
}

type Poll struct {
	ID        string    `json:"id"`
	Question  string    `json:"question"`
	CreatedBy string    `json:"created_by"`
	Choices   []Choice  `json:"choices"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

type Choice struct {
	ID       string `json:"id"`
	PollID   string `json:"poll_id"`
	Text     string `json:"text"`
	Position int    `json:"position"`
}

type Vote struct {
	ID       string    `json:"id"`
	PollID   string    `json:"poll_id"`
	ChoiceID string    `json:"choice_id"`
	UserID   string    `json:"user_id"`
	CastAt   time.Time `json:"cast_at"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
