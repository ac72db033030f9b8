package seed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/Baz333/ds-rest-api-exam/service/aws/dynamodb"
	"github.com/Baz333/ds-rest-api-exam/service/aws/s3"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/gcottom/go-zaplog"
	"github.com/gcottom/retry"
	"go.uber.org/zap"
)

// Seed loads and validates every record from source before writing any,
// then writes them concurrently. It returns how many records were written.
func (s *Service) Seed(ctx context.Context, source string) (int, error) {
	records, err := s.Load(ctx, source)
	if err != nil {
		return 0, err
	}
	if err = s.Validate(records); err != nil {
		zaplog.ErrorC(ctx, "seed document failed validation", zap.String("source", source), zap.Error(err))
		return 0, err
	}
	zaplog.InfoC(ctx, "writing seed records", zap.String("source", source), zap.Int("count", len(records)))

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		written int
		errs    []error
	)
	for i, record := range records {
		s.WriteLimiter.Acquire()
		wg.Add(1)
		go func(i int, record Record) {
			defer wg.Done()
			defer s.WriteLimiter.Release()
			err := s.DBClient.PutCrewRole(ctx, &dynamodb.DBCrewRole{MovieID: record.MovieID, CrewRole: record.CrewRole, Names: record.Names})
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = append(errs, fmt.Errorf("record %d (movieId %d, crewRole %s): %w", i, record.MovieID, record.CrewRole, err))
				return
			}
			written++
		}(i, record)
	}
	wg.Wait()
	return written, errors.Join(errs...)
}

func (s *Service) Load(ctx context.Context, source string) ([]Record, error) {
	data, err := s.Fetch(ctx, source)
	if err != nil {
		zaplog.ErrorC(ctx, "failed to read seed document", zap.String("source", source), zap.Error(err))
		return nil, err
	}
	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to unmarshal seed document %s: %w", source, err)
	}
	return records, nil
}

func (s *Service) Validate(records []Record) error {
	var errs []error
	for i := range records {
		if err := s.Validator.Struct(records[i]); err != nil {
			errs = append(errs, fmt.Errorf("record %d: %w", i, err))
		}
	}
	return errors.Join(errs...)
}

var downloadFromS3 = s3.DownloadFromS3Buf

// ReadSource reads a local file, or downloads the object for an s3:// uri from region.
func ReadSource(ctx context.Context, source, region string) ([]byte, error) {
	if !s3.IsURI(source) {
		return os.ReadFile(source)
	}
	bucket, key, err := s3.ParseURI(source)
	if err != nil {
		return nil, err
	}
	zaplog.InfoC(ctx, "downloading seed document", zap.String("bucket", bucket), zap.String("key", key), zap.String("region", region))
	res, err := retry.Retry(retry.NewAlgSimpleDefault(), 3, downloadFromS3, key, bucket, region)
	if err != nil {
		return nil, err
	}
	return res[0].(*aws.WriteAtBuffer).Bytes(), nil
}
