package stores

import (
	"context"
	"io"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestS3Helper(t *testing.T) {
	bucketName := os.Getenv("BUCKET_NAME")
	if bucketName == "" {
		t.Skip("BUCKET_NAME not set, skipping s3 integration test")
	}
	var endpoint *string
	if localEndpoint := os.Getenv("LOCAL_ENDPOINT"); localEndpoint != "" {
		endpoint = &localEndpoint
	}

	ctx := context.Background()

	s3Helper, err := InitializeS3Helper(ctx, bucketName, "raw-test", 31*time.Second, endpoint)
	require.NoError(t, err, "error on InitializeS3Helper: %v", err)

	t.Run("test PutTextFile", func(t *testing.T) {
		fileName := "nhtoc.html"
		fileContents := "<html>TITLE XIX (Includes Chapters 216 - 227-F)</html>"
		key := aws.String(s3Helper.getRawObjectKey(fileName))

		err := s3Helper.PutTextFile(ctx, fileName, strings.NewReader(fileContents))
		require.NoError(t, err, "error on PutTextFile with fileName=%s: %v", fileName, err)
		defer func() {
			_, err := s3Helper.client.DeleteObject(ctx, &s3.DeleteObjectInput{Bucket: aws.String(bucketName), Key: key})
			assert.NoError(t, err, "error on cleaning up key=%s: %v", *key, err)
		}()

		output, err := s3Helper.client.GetObject(ctx, &s3.GetObjectInput{Bucket: aws.String(bucketName), Key: key})
		require.NoError(t, err, "error on GetObject with key=%s: %v", *key, err)
		defer output.Body.Close()
		foundContents, err := io.ReadAll(output.Body)
		require.NoError(t, err)
		assert.Equal(t, fileContents, string(foundContents), "stored contents are not the same.")
		assert.Equal(t, "text/html; charset=utf-8", aws.ToString(output.ContentType))
	})
}

func TestInitializeS3HelperRequiresBucket(t *testing.T) {
	_, err := InitializeS3Helper(context.Background(), "", "raw", time.Second, nil)
	assert.Error(t, err)
}

func TestGetRawObjectKey(t *testing.T) {
	assert.Equal(t, "raw/nhtoc.htm", (&S3Helper{pathPrefix: "raw"}).getRawObjectKey("nhtoc.htm"))
	assert.Equal(t, "nhtoc.htm", (&S3Helper{}).getRawObjectKey("nhtoc.htm"))
}
