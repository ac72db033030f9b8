package seed

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/Baz333/ds-rest-api-exam/service/aws/dynamodb"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	mu       sync.Mutex
	records  []dynamodb.DBCrewRole
	failRole string
	inFlight int
	maxSeen  int
}

func (f *fakeWriter) PutCrewRole(_ context.Context, record *dynamodb.DBCrewRole) error {
	f.mu.Lock()
	f.inFlight++
	if f.inFlight > f.maxSeen {
		f.maxSeen = f.inFlight
	}
	f.mu.Unlock()

	time.Sleep(5 * time.Millisecond)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.inFlight--
	if record.CrewRole == f.failRole {
		return errors.New("ProvisionedThroughputExceededException")
	}
	f.records = append(f.records, *record)
	return nil
}

func staticFetch(doc string) Fetcher {
	return func(context.Context, string) ([]byte, error) {
		return []byte(doc), nil
	}
}

const seedDoc = `[
	{"movieId": 1234, "crewRole": "director", "names": "Alice,Bob"},
	{"movieId": 1234, "crewRole": "writer", "names": "Carol"},
	{"movieId": 5678, "crewRole": "producer", "names": "Dana,Eli,Fay"}
]`

func TestSeed(t *testing.T) {
	tests := []struct {
		name            string
		doc             string
		failRole        string
		expectedWritten int
		expectedError   bool
	}{
		{name: "all written", doc: seedDoc, expectedWritten: 3},
		{name: "one write fails", doc: seedDoc, failRole: "writer", expectedWritten: 2, expectedError: true},
		{name: "empty document", doc: `[]`, expectedWritten: 0},
		{name: "malformed document", doc: `{"movieId": 1}`, expectedError: true},
		{
			name:          "invalid record blocks all writes",
			doc:           `[{"movieId": 1, "crewRole": "director", "names": "A"}, {"movieId": 0, "crewRole": "", "names": ""}]`,
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			writer := &fakeWriter{failRole: tt.failRole}
			svc := NewSeedService(writer, 2, "")
			svc.Fetch = staticFetch(tt.doc)

			written, err := svc.Seed(context.Background(), "seed.json")

			assert.Equal(t, tt.expectedWritten, written)
			assert.Len(t, writer.records, tt.expectedWritten)
			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSeedBoundsConcurrency(t *testing.T) {
	doc := `[`
	for i := 1; i <= 12; i++ {
		if i > 1 {
			doc += ","
		}
		doc += fmt.Sprintf(`{"movieId": %d, "crewRole": "grip", "names": "N"}`, i)
	}
	doc += `]`

	writer := &fakeWriter{}
	svc := NewSeedService(writer, 3, "")
	svc.Fetch = staticFetch(doc)

	written, err := svc.Seed(context.Background(), "seed.json")
	require.NoError(t, err)
	assert.Equal(t, 12, written)
	assert.LessOrEqual(t, writer.maxSeen, 3)
}

func TestSeedWriteErrorNamesRecord(t *testing.T) {
	writer := &fakeWriter{failRole: "producer"}
	svc := NewSeedService(writer, 1, "")
	svc.Fetch = staticFetch(seedDoc)

	_, err := svc.Seed(context.Background(), "seed.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "record 2 (movieId 5678, crewRole producer)")
}

func TestValidate(t *testing.T) {
	svc := NewSeedService(&fakeWriter{}, 1, "")

	assert.NoError(t, svc.Validate([]Record{{MovieID: 1, CrewRole: "director", Names: "A"}}))

	err := svc.Validate([]Record{
		{MovieID: 1, CrewRole: "director", Names: "A"},
		{MovieID: -1, CrewRole: "director", Names: "A"},
		{MovieID: 1, CrewRole: "", Names: "A"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "record 1")
	assert.Contains(t, err.Error(), "record 2")
	assert.NotContains(t, err.Error(), "record 0")
}

func TestReadSourceLocalFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crew.json")
	require.NoError(t, os.WriteFile(path, []byte(seedDoc), 0644))

	data, err := ReadSource(context.Background(), path, "")
	require.NoError(t, err)
	assert.Equal(t, seedDoc, string(data))

	_, err = ReadSource(context.Background(), filepath.Join(t.TempDir(), "missing.json"), "")
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = ReadSource(context.Background(), "s3://bucket-only", "")
	assert.Error(t, err)
}

func TestSeedFromS3UsesConfiguredRegion(t *testing.T) {
	var gotKey, gotBucket, gotRegion string
	download := downloadFromS3
	t.Cleanup(func() { downloadFromS3 = download })
	downloadFromS3 = func(id, bucket, region string) (*aws.WriteAtBuffer, error) {
		gotKey, gotBucket, gotRegion = id, bucket, region
		return aws.NewWriteAtBuffer([]byte(seedDoc)), nil
	}

	writer := &fakeWriter{}
	svc := NewSeedService(writer, 2, "eu-west-1")

	written, err := svc.Seed(context.Background(), "s3://seed-bucket/crew/crew_roles.json")

	require.NoError(t, err)
	assert.Equal(t, 3, written)
	assert.Equal(t, "eu-west-1", svc.Region)
	assert.Equal(t, "eu-west-1", gotRegion)
	assert.Equal(t, "seed-bucket", gotBucket)
	assert.Equal(t, "crew/crew_roles.json", gotKey)
}
