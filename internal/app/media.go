package app

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/metric"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	appctx "github.com/MiguelCav2025/sitecav/internal/app/context"
	"github.com/MiguelCav2025/sitecav/internal/domain"
	"github.com/MiguelCav2025/sitecav/internal/domain/content"
	"github.com/MiguelCav2025/sitecav/internal/platform/telemetry"
	"github.com/MiguelCav2025/sitecav/internal/ports"
)

// DefaultMaxUploadSize applies when no limit is configured.
const DefaultMaxUploadSize int64 = 50 << 20

const maxSlugLen = 60

// MediaAttacher uploads form files to object storage and points entities at
// them. Uploads are staged on an appctx.RequestContext so that a failed row
// write removes the file again.
type MediaAttacher struct {
	storage ports.ObjectStorage
	maxSize int64
	metrics *telemetry.Metrics
	logger  *slog.Logger
	now     func() time.Time
}

// NewMediaAttacher creates a MediaAttacher. A maxSize of zero or less uses
// DefaultMaxUploadSize. metrics may be nil.
func NewMediaAttacher(storage ports.ObjectStorage, maxSize int64, metrics *telemetry.Metrics, logger *slog.Logger) *MediaAttacher {
	if maxSize <= 0 {
		maxSize = DefaultMaxUploadSize
	}
	return &MediaAttacher{
		storage: storage,
		maxSize: maxSize,
		metrics: metrics,
		logger:  discardIfNil(logger),
		now:     time.Now,
	}
}

// Check rejects files the location does not accept or that exceed the size
// limit.
func (m *MediaAttacher) Check(loc content.MediaLocation, file *ports.FileUpload) error {
	if !loc.Accepts(file.ContentType) {
		return domain.NewValidationError("file", fmt.Sprintf("tipo de arquivo não permitido: %s", file.ContentType))
	}
	if file.Size > m.maxSize {
		return domain.NewValidationError("file", fmt.Sprintf("deve ter no máximo %d bytes", m.maxSize))
	}
	return nil
}

// StageUpload queues the upload of file on rc. When the step runs, the file
// is stored under a fresh object name in loc and entity is attached to it.
// Rolling the step back removes the object.
func (m *MediaAttacher) StageUpload(rc *appctx.RequestContext, loc content.MediaLocation, entity content.Attachable, file *ports.FileUpload) error {
	if err := m.Check(loc, file); err != nil {
		return err
	}

	name := ObjectName(loc.Prefix, file.Name, m.now())
	var stored string

	return rc.AddAction(appctx.Step{
		Name: "upload " + loc.Bucket + "/" + name,
		Do: func(ctx context.Context) error {
			p, err := m.storage.Upload(ctx, loc.Bucket, name, file.Body, file.ContentType)
			m.recordUpload(ctx, loc.Bucket, err)
			if err != nil {
				return &domain.UploadError{Bucket: loc.Bucket, Path: name, Err: err}
			}
			stored = p
			entity.Attach(content.StoredFile{
				URL:         m.storage.PublicURL(loc.Bucket, p),
				Name:        file.Name,
				ContentType: file.ContentType,
				Size:        file.Size,
			})
			return nil
		},
		Undo: func(ctx context.Context) error {
			return m.storage.Remove(ctx, loc.Bucket, stored)
		},
	})
}

// RemoveFile deletes the object behind url. URLs outside loc's bucket, such
// as external links or files from another backend, are left alone.
func (m *MediaAttacher) RemoveFile(ctx context.Context, loc content.MediaLocation, url string) error {
	if url == "" {
		return nil
	}
	p, ok := m.storage.ObjectPath(loc.Bucket, url)
	if !ok {
		m.logger.WarnContext(ctx, "skipping removal of file outside bucket",
			slog.String("bucket", loc.Bucket),
			slog.String("url", url),
		)
		return nil
	}
	return m.storage.Remove(ctx, loc.Bucket, p)
}

func (m *MediaAttacher) recordUpload(ctx context.Context, bucket string, err error) {
	if m.metrics == nil {
		return
	}
	result := "success"
	if err != nil {
		result = "error"
	}
	m.metrics.UploadTotal.Add(ctx, 1, metric.WithAttributes(
		telemetry.AttrBucket.String(bucket),
		telemetry.AttrResult.String(result),
	))
}

// ObjectName builds a collision-resistant object name for an uploaded file:
// prefix, upload time in Unix milliseconds, 8 random hex digits, the
// ASCII-folded base name and the original extension.
//
//	ObjectName("banners/", "Ensaio Fotográfico.JPG", t) // banners/1718000000000-1a2b3c4d-ensaio-fotografico.jpg
func ObjectName(prefix, filename string, now time.Time) string {
	base := path.Base(strings.ReplaceAll(filename, `\`, "/"))
	ext := path.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	ext = strings.ToLower(ext)
	if !isExtension(ext) {
		ext, stem = "", base
	}

	return fmt.Sprintf("%s%d-%s-%s%s",
		prefix,
		now.UnixMilli(),
		strings.ReplaceAll(uuid.NewString(), "-", "")[:8],
		slugify(stem),
		ext,
	)
}

// slugify folds accents away and keeps lowercase ASCII letters and digits,
// joining runs of anything else with a single hyphen.
func slugify(s string) string {
	folded, _, err := transform.String(transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), s)
	if err != nil {
		folded = s
	}

	var b strings.Builder
	hyphen := false
	for _, r := range strings.ToLower(folded) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			hyphen = false
		case !hyphen && b.Len() > 0:
			b.WriteByte('-')
			hyphen = true
		}
		if b.Len() >= maxSlugLen {
			break
		}
	}

	slug := strings.TrimRight(b.String(), "-")
	if slug == "" {
		return "file"
	}
	return slug
}

func isExtension(ext string) bool {
	if len(ext) < 2 || len(ext) > 10 {
		return false
	}
	for _, r := range ext[1:] {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return false
		}
	}
	return true
}
