package session

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// S3Config configures the object-storage session store.
type S3Config struct {
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// S3Store keeps workshop state as JSON objects in an S3-compatible bucket:
// one object per winery context, one per poll response, one per signup.
// Append-only records never contend on a shared object.
type S3Store struct {
	client   *minio.Client
	bucket   string
	region   string
	initOnce sync.Once
	initErr  error
}

func NewS3Store(cfg S3Config) (*S3Store, error) {
	endpoint := strings.TrimSpace(cfg.Endpoint)
	if endpoint == "" {
		return nil, fmt.Errorf("s3 endpoint is required")
	}
	access := strings.TrimSpace(cfg.AccessKey)
	secret := strings.TrimSpace(cfg.SecretKey)
	if access == "" || secret == "" {
		return nil, fmt.Errorf("s3 access key and secret key are required")
	}
	bucket := strings.TrimSpace(cfg.Bucket)
	if bucket == "" {
		return nil, fmt.Errorf("s3 bucket is required")
	}
	region := strings.TrimSpace(cfg.Region)
	if region == "" {
		region = "us-east-1"
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(access, secret, ""),
		Secure: cfg.UseSSL,
		Region: region,
	})
	if err != nil {
		return nil, fmt.Errorf("init s3 client: %w", err)
	}
	return &S3Store{client: client, bucket: bucket, region: region}, nil
}

func (s *S3Store) ensureBucket(ctx context.Context) error {
	s.initOnce.Do(func() {
		exists, err := s.client.BucketExists(ctx, s.bucket)
		if err != nil {
			s.initErr = err
			return
		}
		if exists {
			return
		}
		s.initErr = s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{Region: s.region})
	})
	return s.initErr
}

func (s *S3Store) putJSON(ctx context.Context, key string, v any) error {
	if err := s.ensureBucket(ctx); err != nil {
		return fmt.Errorf("ensure bucket: %w", err)
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(b), int64(len(b)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	return err
}

func (s *S3Store) SetContext(ctx context.Context, sessionID string, wc WineryContext) error {
	return s.putJSON(ctx, "contexts/"+sessionID+".json", wc)
}

func (s *S3Store) GetContext(ctx context.Context, sessionID string) (WineryContext, bool, error) {
	if err := s.ensureBucket(ctx); err != nil {
		return WineryContext{}, false, err
	}
	obj, err := s.client.GetObject(ctx, s.bucket, "contexts/"+sessionID+".json", minio.GetObjectOptions{})
	if err != nil {
		return WineryContext{}, false, err
	}
	defer obj.Close()
	b, err := io.ReadAll(obj)
	if err != nil {
		resp := minio.ToErrorResponse(err)
		if resp.Code == "NoSuchKey" {
			return WineryContext{}, false, nil
		}
		return WineryContext{}, false, err
	}
	var wc WineryContext
	if err := json.Unmarshal(b, &wc); err != nil {
		return WineryContext{}, false, nil
	}
	return wc, true, nil
}

func (s *S3Store) AppendPoll(ctx context.Context, p PollResponse) error {
	key := fmt.Sprintf("polls/%s/%s.json", p.Exercise, p.ID)
	return s.putJSON(ctx, key, p)
}

func (s *S3Store) ListPolls(ctx context.Context, exercise string) ([]PollResponse, error) {
	if err := s.ensureBucket(ctx); err != nil {
		return nil, err
	}
	prefix := "polls/"
	if exercise != "" {
		prefix += exercise + "/"
	}
	out := []PollResponse{}
	for obj := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{Prefix: prefix, Recursive: true}) {
		if obj.Err != nil {
			return nil, obj.Err
		}
		r, err := s.client.GetObject(ctx, s.bucket, obj.Key, minio.GetObjectOptions{})
		if err != nil {
			return nil, err
		}
		b, err := io.ReadAll(r)
		_ = r.Close()
		if err != nil {
			return nil, err
		}
		var p PollResponse
		if err := json.Unmarshal(b, &p); err != nil {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (s *S3Store) AppendBeta(ctx context.Context, b BetaSignup) error {
	return s.putJSON(ctx, "betas/"+b.ID+".json", b)
}

func (s *S3Store) Close() error { return nil }
