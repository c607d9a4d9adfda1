package queries

import (
	"net/url"
	"strings"

	"spark-bytes/internal/pkg/config"
	"spark-bytes/internal/pkg/objectpath"
)

// ImageURLResolver turns a blob store object path into a public URL.
type ImageURLResolver interface {
	Resolve(path string) string
}

// AvatarURLResolver resolves profile pictures, which live in their own bucket.
type AvatarURLResolver ImageURLResolver

type publicBucketResolver struct {
	base   string
	bucket string
}

func NewImageURLResolver(cfg config.Config) ImageURLResolver {
	return newPublicBucketResolver(cfg.Storage.PublicBaseURL, cfg.Storage.Bucket)
}

func NewAvatarURLResolver(cfg config.Config) AvatarURLResolver {
	return newPublicBucketResolver(cfg.Storage.PublicBaseURL, cfg.Storage.AvatarBucket)
}

func newPublicBucketResolver(base, bucket string) *publicBucketResolver {
	return &publicBucketResolver{
		base:   strings.TrimRight(base, "/"),
		bucket: bucket,
	}
}

func (r *publicBucketResolver) Resolve(path string) string {
	path = strings.TrimLeft(strings.TrimSpace(path), "/")
	if path == "" || objectpath.Escapes(path) {
		return ""
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	u, err := url.JoinPath(r.base, "storage/v1/object/public", r.bucket, path)
	if err != nil {
		return ""
	}
	return u
}
