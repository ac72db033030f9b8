package dynamodb

import (
	"fmt"

	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"
)

const (
	AttrMovieID  string = "movieId"
	AttrCrewRole string = "crewRole"
	AttrNames    string = "names"
)

// DBCrewRole is one row of the crew roles table, keyed by (movieId, crewRole).
// Names holds every person for the role joined with ",".
type DBCrewRole struct {
	MovieID  int    `dynamodbav:"movieId" json:"movieId"`
	CrewRole string `dynamodbav:"crewRole" json:"crewRole"`
	Names    string `dynamodbav:"names" json:"names"`
}

type DynamoClient struct {
	Client    dynamodbiface.DynamoDBAPI
	TableName string
}

type DBQueryError struct {
	MovieID   int
	CrewRole  string
	TableName string
	Err       error
}

func (e *DBQueryError) Error() string {
	return fmt.Sprintf("query for movieId {%d} crewRole {%s} failed in table {%s}: %v", e.MovieID, e.CrewRole, e.TableName, e.Err)
}

func (e *DBQueryError) Unwrap() error {
	return e.Err
}
