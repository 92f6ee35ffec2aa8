package standingsexport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// SnapshotStore keeps timestamped standings documents in an S3 bucket
// so the portal history survives judge resets.
type SnapshotStore struct {
	client *s3.Client
	bucket string
	region string
}

func NewSnapshotStore(region string, bucket string) (*SnapshotStore, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("unable to load SDK config: %w", err)
	}

	return &SnapshotStore{
		client: s3.NewFromConfig(cfg),
		bucket: bucket,
		region: region,
	}, nil
}

// Snapshot marshals the document and uploads it under a timestamped
// key. It returns the URL of the uploaded object.
func (store *SnapshotStore) Snapshot(ctx context.Context, doc *Document) (string, error) {
	content, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("failed to marshal standings document: %w", err)
	}

	key := fmt.Sprintf("standings/%s.json", time.Now().UTC().Format("2006-01-02T15-04-05Z"))
	return store.upload(ctx, content, key, "application/json")
}

func (store *SnapshotStore) upload(ctx context.Context, content []byte, key string, mediaType string) (string, error) {
	_, err := store.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      &store.bucket,
		Key:         &key,
		Body:        bytes.NewReader(content),
		ContentType: &mediaType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload object: %w", err)
	}

	objectURL := fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", store.bucket, store.region, key)
	return objectURL, nil
}

// Exists reports whether a snapshot key is already present.
func (store *SnapshotStore) Exists(ctx context.Context, key string) (bool, error) {
	_, err := store.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: &store.bucket,
		Key:    &key,
	})
	if err != nil {
		var responseError *awshttp.ResponseError
		if errors.As(err, &responseError) && responseError.ResponseError.HTTPStatusCode() == 404 {
			return false, nil
		}
		return false, fmt.Errorf("failed to check object existence: %w", err)
	}
	return true, nil
}
