package app

import (
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MiguelCav2025/sitecav/internal/adapters/repository"
	"github.com/MiguelCav2025/sitecav/internal/adapters/store/memstorage"
	"github.com/MiguelCav2025/sitecav/internal/adapters/store/memstore"
	"github.com/MiguelCav2025/sitecav/internal/ports"
)

const filesURL = "http://files.test"

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// fixture is a full set of services on in-memory backends.
type fixture struct {
	repos   *repository.Repositories
	storage *memstorage.Storage
	svc     *Services
}

func newFixture(t *testing.T, mailer ports.Mailer) *fixture {
	t.Helper()
	repos := repository.NewRepositories(memstore.New())
	storage := memstorage.New(filesURL)
	svc := NewServices(Dependencies{
		Sources:     sourcesOf(repos),
		ProcessData: repos.ProcessData,
		Storage:     storage,
		Mailer:      mailer,
		Logger:      discardLogger(),
	})
	return &fixture{repos: repos, storage: storage, svc: svc}
}

func sourcesOf(repos *repository.Repositories) PageSources {
	return PageSources{
		Banners:               repos.Banners,
		StudentProjects:       repos.StudentProjects,
		InstitutionalProjects: repos.InstitutionalProjects,
		Photos:                repos.Photos,
		Downloads:             repos.Downloads,
		Bibliographies:        repos.Bibliographies,
		Videos:                repos.Videos,
	}
}

func upload(name, contentType, body string) *ports.FileUpload {
	return &ports.FileUpload{
		Name:        name,
		ContentType: contentType,
		Size:        int64(len(body)),
		Body:        strings.NewReader(body),
	}
}

// objectPath returns the storage path of a URL served by memstorage.
func objectPath(t *testing.T, s *memstorage.Storage, bucket, url string) string {
	t.Helper()
	p, ok := s.ObjectPath(bucket, url)
	require.True(t, ok, "url %q is not in bucket %q", url, bucket)
	return p
}
