package s3

import (
	"os"

	"github.com/aws/aws-sdk-go/aws"
)

const URIScheme = "s3://"

// defaultRegion is the fallback used when a caller passes no region of its own.
var defaultRegion *string

func init() {
	r := os.Getenv("REGION")
	if r == "" {
		r = os.Getenv("AWS_REGION")
	}
	defaultRegion = aws.String(r)
}
