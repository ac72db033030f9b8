package s3

import (
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseURI(t *testing.T) {
	tests := []struct {
		name           string
		uri            string
		expectedBucket string
		expectedKey    string
		expectedError  string
	}{
		{
			name:           "nested key",
			uri:            "s3://seed-bucket/crew/roles.json",
			expectedBucket: "seed-bucket",
			expectedKey:    "crew/roles.json",
		},
		{
			name:          "local path",
			uri:           "./data/crew_roles.json",
			expectedError: `not an s3 uri: "./data/crew_roles.json"`,
		},
		{
			name:          "bucket only",
			uri:           "s3://seed-bucket",
			expectedError: `s3 uri must name a bucket and a key: "s3://seed-bucket"`,
		},
		{
			name:          "empty key",
			uri:           "s3://seed-bucket/",
			expectedError: `s3 uri must name a bucket and a key: "s3://seed-bucket/"`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			bucket, key, err := ParseURI(tc.uri)

			if tc.expectedError == "" {
				assert.NoError(t, err)
				assert.Equal(t, tc.expectedBucket, bucket)
				assert.Equal(t, tc.expectedKey, key)
			} else {
				assert.Empty(t, bucket)
				assert.Empty(t, key)
				assert.EqualError(t, err, tc.expectedError)
			}
		})
	}
}

func TestNewSession(t *testing.T) {
	envRegion := defaultRegion
	t.Cleanup(func() { defaultRegion = envRegion })
	defaultRegion = aws.String("us-east-1")

	tests := []struct {
		name           string
		region         string
		expectedRegion string
	}{
		{
			name:           "configured region",
			region:         "eu-west-1",
			expectedRegion: "eu-west-1",
		},
		{
			name:           "environment fallback",
			region:         "",
			expectedRegion: "us-east-1",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sess, err := NewSession(tc.region)

			require.NoError(t, err)
			assert.Equal(t, tc.expectedRegion, aws.StringValue(sess.Config.Region))
		})
	}
}
