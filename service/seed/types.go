package seed

import (
	"context"

	"github.com/Baz333/ds-rest-api-exam/service/aws/dynamodb"
	"github.com/gcottom/semaphore"
	"github.com/go-playground/validator/v10"
)

type SeedService interface {
	Seed(ctx context.Context, source string) (int, error)
}

type CrewRoleWriter interface {
	PutCrewRole(ctx context.Context, record *dynamodb.DBCrewRole) error
}

// Fetcher returns the raw seed document named by source.
type Fetcher func(ctx context.Context, source string) ([]byte, error)

type Service struct {
	DBClient     CrewRoleWriter
	Fetch        Fetcher
	Region       string
	WriteLimiter *semaphore.Semaphore
	Validator    *validator.Validate
}

// NewSeedService reads s3:// sources from region; an empty region defers to the environment.
func NewSeedService(dbClient CrewRoleWriter, concurrency int, region string) *Service {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Service{
		DBClient: dbClient,
		Fetch: func(ctx context.Context, source string) ([]byte, error) {
			return ReadSource(ctx, source, region)
		},
		Region:       region,
		WriteLimiter: semaphore.NewSemaphore(concurrency),
		Validator:    validator.New(),
	}
}

// Record is one entry of a seed document.
type Record struct {
	MovieID  int    `json:"movieId" validate:"gt=0"`
	CrewRole string `json:"crewRole" validate:"required"`
	Names    string `json:"names" validate:"required"`
}
