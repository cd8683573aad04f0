// Package objectstore resolves announcer clip keys to fetchable URLs, either as S3
// presigned GETs or under a static base URL
package objectstore

import (
	"context"
	"net/url"
	"strings"
	"sync"
	"time"

	"moodroom/internal/platform/config"
	perr "moodroom/internal/platform/errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// seams for tests
var (
	loadDefaultAWSConfig = awsconfig.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignGetObject(ctx, in, optFns...)
	}
)

// Options configures the Resolver
type Options struct {
	Enabled    bool
	Bucket     string
	Region     string
	Endpoint   string
	AccessKey  string
	SecretKey  string
	PresignTTL time.Duration

	// StaticBaseURL serves clips when S3 is disabled (i.e. a CDN or the web client's /audio)
	StaticBaseURL string
}

// FromConfig reads SERVICE_S3_* style keys
func FromConfig(c config.Conf) Options {
	o := Options{
		Enabled:       c.MayBool("ENABLED", false),
		Region:        c.MayString("REGION", "us-east-1"),
		Endpoint:      c.MayURL("ENDPOINT", ""),
		AccessKey:     c.MayString("ACCESS_KEY", ""),
		SecretKey:     c.MayString("SECRET_KEY", ""),
		PresignTTL:    c.MayDuration("PRESIGN_TTL", 15*time.Minute),
		StaticBaseURL: c.MayURL("STATIC_BASE_URL", ""),
	}
	if o.Enabled {
		o.Bucket = c.MustString("BUCKET")
	}
	return o
}

// Resolver turns clip keys into URLs
type Resolver struct {
	opts Options

	once    sync.Once
	presign *s3.PresignClient
	initErr error
}

// New builds a Resolver; the S3 client is created lazily on first use
func New(o Options) *Resolver {
	if o.PresignTTL <= 0 {
		o.PresignTTL = 15 * time.Minute
	}
	return &Resolver{opts: o}
}

func (r *Resolver) client(ctx context.Context) (*s3.PresignClient, error) {
	r.once.Do(func() {
		opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(r.opts.Region)}
		if r.opts.AccessKey != "" {
			opts = append(opts, awsconfig.WithCredentialsProvider(
				credentials.NewStaticCredentialsProvider(r.opts.AccessKey, r.opts.SecretKey, ""),
			))
		}
		// the client outlives this request; a cancelled caller must not poison it
		cfg, err := loadDefaultAWSConfig(context.WithoutCancel(ctx), opts...)
		if err != nil {
			r.initErr = perr.Wrap(err, perr.ErrorCodeUnavailable, "objectstore aws config")
			return
		}
		c := newS3ClientFromConfig(cfg, func(o *s3.Options) {
			if r.opts.Endpoint != "" {
				o.BaseEndpoint = aws.String(r.opts.Endpoint)
				// minio and friends want path style
				o.UsePathStyle = true
			}
		})
		r.presign = s3.NewPresignClient(c)
	})
	return r.presign, r.initErr
}

// Resolve returns a URL the client can GET for key
func (r *Resolver) Resolve(ctx context.Context, key string) (string, error) {
	key = strings.TrimLeft(key, "/")
	if key == "" {
		return "", perr.InvalidArgf("empty clip key")
	}
	if !r.opts.Enabled {
		return r.static(key)
	}
	pc, err := r.client(ctx)
	if err != nil {
		return "", err
	}
	req, err := presignGetObject(pc, ctx, &s3.GetObjectInput{
		Bucket: aws.String(r.opts.Bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(r.opts.PresignTTL))
	if err != nil {
		return "", perr.Wrap(err, perr.ErrorCodeUpstream, "objectstore presign failed")
	}
	return req.URL, nil
}

func (r *Resolver) static(key string) (string, error) {
	if r.opts.StaticBaseURL == "" {
		return "", perr.Unavailablef("no clip storage configured")
	}
	base, err := url.Parse(strings.TrimSuffix(r.opts.StaticBaseURL, "/") + "/")
	if err != nil {
		return "", perr.Wrap(err, perr.ErrorCodeUnavailable, "static clip base url invalid")
	}
	return base.JoinPath(key).String(), nil
}
