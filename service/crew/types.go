package crew

import (
	"context"
	"errors"

	"github.com/Baz333/ds-rest-api-exam/service/aws/dynamodb"
)

// Mode selects how a matched record's names are returned.
type Mode int

const (
	// ModeSplit splits names on "," and applies the optional substring filter.
	ModeSplit Mode = iota
	// ModePassThrough returns the stored comma-joined string untouched.
	ModePassThrough
)

type ErrorKind string

const (
	KindInvalidInput ErrorKind = "InvalidInput"
	KindNoResultSet  ErrorKind = "NoResultSet"
	KindNotFound     ErrorKind = "NotFound"
	KindUnhandled    ErrorKind = "Unhandled"
)

const (
	MessageInvalidParameters = "Invalid parameters"
	MessageInvalidExpression = "Invalid expression"
	MessageNoNamesFound      = "No names found for this role and movie"
	MessageInternalError     = "internal error"
)

var ErrInvalidParameters = errors.New("invalid parameters")

type LookupKey struct {
	MovieID  int
	CrewRole string
}

// Request carries the raw inbound values. An empty Name means no filter.
type Request struct {
	Role    string
	MovieID string
	Name    string
}

// Response is the status and JSON payload for one lookup. Kind is empty on success.
type Response struct {
	StatusCode int
	Kind       ErrorKind
	Body       any
}

type MessageBody struct {
	Message string `json:"Message"`
}

type NamesBody struct {
	Names []string `json:"names"`
}

type RawNamesBody struct {
	Names string `json:"names"`
}

type ErrorBody struct {
	Error ErrorSummary `json:"error"`
}

type ErrorSummary struct {
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
}

type CrewRoleStore interface {
	QueryCrewRole(ctx context.Context, movieID int, crewRole string) ([]dynamodb.DBCrewRole, error)
}

type Service struct {
	DBClient CrewRoleStore
}

func NewService(dbClient CrewRoleStore) *Service {
	return &Service{DBClient: dbClient}
}
