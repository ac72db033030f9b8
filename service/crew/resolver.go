package crew

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/Baz333/ds-rest-api-exam/service/aws/dynamodb"
)

// ParseLookupKey validates the path parameters. A movie id of 0 counts as missing.
func ParseLookupKey(role string, movieID string) (LookupKey, error) {
	if role == "" || movieID == "" {
		return LookupKey{}, ErrInvalidParameters
	}
	id, err := strconv.Atoi(movieID)
	if err != nil || id == 0 {
		return LookupKey{}, fmt.Errorf("%w: movieId %q", ErrInvalidParameters, movieID)
	}
	return LookupKey{MovieID: id, CrewRole: role}, nil
}

// Resolve maps the rows returned for key to a response. A nil rows slice
// means the store returned no result set. When several rows carry the
// requested role the last one wins.
func Resolve(key LookupKey, nameSubstring string, rows []dynamodb.DBCrewRole, mode Mode) Response {
	if rows == nil {
		return NotFound(KindNoResultSet, MessageInvalidExpression)
	}
	var match *dynamodb.DBCrewRole
	for i := range rows {
		if rows[i].CrewRole == key.CrewRole {
			match = &rows[i]
		}
	}
	if match == nil {
		return NotFound(KindNotFound, MessageNoNamesFound)
	}
	if mode == ModePassThrough {
		if match.Names == "" {
			return NotFound(KindNotFound, MessageNoNamesFound)
		}
		return Response{StatusCode: http.StatusOK, Body: RawNamesBody{Names: match.Names}}
	}
	return Response{StatusCode: http.StatusOK, Body: NamesBody{Names: SplitNames(match.Names, nameSubstring)}}
}

// SplitNames splits a stored names value on "," keeping order and duplicates.
// A non-empty substring keeps only the entries that contain it; the result
// is never nil.
func SplitNames(names string, substring string) []string {
	parts := strings.Split(names, ",")
	if substring == "" {
		return parts
	}
	filtered := make([]string, 0, len(parts))
	for _, name := range parts {
		if strings.Contains(name, substring) {
			filtered = append(filtered, name)
		}
	}
	return filtered
}

func NotFound(kind ErrorKind, message string) Response {
	return Response{StatusCode: http.StatusNotFound, Kind: kind, Body: MessageBody{Message: message}}
}

func Unhandled() Response {
	return Response{
		StatusCode: http.StatusInternalServerError,
		Kind:       KindUnhandled,
		Body:       ErrorBody{Error: ErrorSummary{Kind: KindUnhandled, Message: MessageInternalError}},
	}
}
