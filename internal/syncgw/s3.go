// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package syncgw

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"

	"marketsite/internal/models"
)

// S3 stores each row as a JSON object at <prefix>/<collection>/<id>.json in
// an S3-compatible bucket, using path-style addressing.
type S3 struct {
	client *s3.Client
	bucket string
	prefix string
}

// NewS3 creates an S3 backend. Returns (nil, nil) if the endpoint or
// credentials are empty, so callers can treat the store as unconfigured.
func NewS3(endpoint, region, accessKey, secretKey, bucket, prefix string) (*S3, error) {
	if endpoint == "" || accessKey == "" || secretKey == "" {
		return nil, nil
	}
	if bucket == "" {
		return nil, errors.New("s3 backend: bucket is required")
	}

	client := s3.New(s3.Options{
		Region:       region,
		BaseEndpoint: aws.String(strings.TrimRight(endpoint, "/")),
		Credentials:  credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
		UsePathStyle: true,
	})

	return &S3{client: client, bucket: bucket, prefix: strings.Trim(prefix, "/")}, nil
}

// objectKey returns the object key for a row. IDs are path-escaped so that
// a slash in an id cannot escape its collection.
func (s *S3) objectKey(c models.Collection, id string) string {
	return path.Join(s.prefix, string(c), url.PathEscape(id)+".json")
}

// collectionPrefix returns the listing prefix of a collection.
func (s *S3) collectionPrefix(c models.Collection) string {
	return path.Join(s.prefix, string(c)) + "/"
}

// idFromKey reverses objectKey.
func (s *S3) idFromKey(c models.Collection, key string) (string, bool) {
	name, ok := strings.CutPrefix(key, s.collectionPrefix(c))
	if !ok || strings.Contains(name, "/") {
		return "", false
	}
	name, ok = strings.CutSuffix(name, ".json")
	if !ok {
		return "", false
	}
	id, err := url.PathUnescape(name)
	if err != nil {
		return "", false
	}
	return id, true
}

// List fetches every object of the collection.
func (s *S3) List(ctx context.Context, c models.Collection) ([]Record, error) {
	records := []Record{}
	pager := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(s.collectionPrefix(c)),
	})
	for pager.HasMorePages() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("s3 list %s: %w", c, err)
		}
		for _, obj := range page.Contents {
			key := aws.ToString(obj.Key)
			id, ok := s.idFromKey(c, key)
			if !ok {
				continue
			}
			data, err := s.get(ctx, key)
			if isNotFound(err) {
				// Deleted between the listing and the read.
				continue
			}
			if err != nil {
				return nil, err
			}
			r := Record{Collection: c, ID: id, Data: data}
			if obj.LastModified != nil {
				r.UpdatedAt = *obj.LastModified
			}
			records = append(records, r)
		}
	}
	return records, nil
}

func (s *S3) get(ctx context.Context, key string) ([]byte, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("s3 get %s: %w", key, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("s3 read %s: %w", key, err)
	}
	return data, nil
}

// Put writes the row's JSON as an object.
func (s *S3) Put(ctx context.Context, r Record) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(s.objectKey(r.Collection, r.ID)),
		Body:        bytes.NewReader(r.Data),
		ContentType: aws.String("application/json"),
		ACL:         s3types.ObjectCannedACLPrivate,
	})
	if err != nil {
		return fmt.Errorf("s3 put %s/%s: %w", r.Collection, r.ID, err)
	}
	return nil
}

// Remove deletes the row's object.
func (s *S3) Remove(ctx context.Context, c models.Collection, id string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.objectKey(c, id)),
	})
	if err != nil {
		return fmt.Errorf("s3 delete %s/%s: %w", c, id, err)
	}
	return nil
}

// isNotFound reports whether err is S3's answer for a missing object.
func isNotFound(err error) bool {
	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	switch apiErr.ErrorCode() {
	case "NoSuchKey", "NotFound":
		return true
	}
	return false
}
