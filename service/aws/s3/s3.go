package s3

import (
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
)

// DownloadFromS3Buf fetches bucket/id into memory. An empty region falls
// back to REGION or AWS_REGION.
func DownloadFromS3Buf(id, bucket, region string) (*aws.WriteAtBuffer, error) {
	sess, err := NewSession(region)
	if err != nil {
		return nil, err
	}
	buf := aws.NewWriteAtBuffer([]byte{})
	downloader := s3manager.NewDownloader(sess)
	if _, err := downloader.Download(buf, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &id,
	}); err != nil {
		return nil, err
	}
	return buf, nil
}

func NewSession(region string) (*session.Session, error) {
	conf := aws.Config{Region: defaultRegion}
	if region != "" {
		conf.Region = aws.String(region)
	}
	return session.NewSession(&conf)
}

// ParseURI splits "s3://bucket/path/to/key" into bucket and key.
func ParseURI(uri string) (bucket string, key string, err error) {
	if !IsURI(uri) {
		return "", "", fmt.Errorf("not an s3 uri: %q", uri)
	}
	bucket, key, ok := strings.Cut(strings.TrimPrefix(uri, URIScheme), "/")
	if !ok || bucket == "" || key == "" {
		return "", "", fmt.Errorf("s3 uri must name a bucket and a key: %q", uri)
	}
	return bucket, key, nil
}

func IsURI(uri string) bool {
	return strings.HasPrefix(uri, URIScheme)
}
