package postprocess

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/tobi-adeyemi/extractflow/internal/blobstore"
	"github.com/tobi-adeyemi/extractflow/internal/entity"
)

const workbookName = "extracted.xlsx"

// Service assembles the downloadable bundle for a session whose jobs all
// succeeded: renamed source files plus the tabular export, zipped and stored
// under the session's blob namespace.
type Service struct {
	blobs  blobstore.Store
	keys   blobstore.Keys
	logger *slog.Logger

	fetchParallelism int
}

func NewService(blobs blobstore.Store, keys blobstore.Keys, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{blobs: blobs, keys: keys, logger: logger, fetchParallelism: 4}
}

// Run builds and stores the bundle, returning its blob key. Callers hold the
// session's post-processing claim; Run itself is not re-entrant per session.
func (s *Service) Run(ctx context.Context, session *entity.Session, jobs []entity.Job) (string, error) {
	start := time.Now()

	template, err := ParseTemplate(session.NamingTemplate)
	if err != nil {
		return "", err
	}
	columns, err := ParseColumns(session.ExportColumns)
	if err != nil {
		return "", err
	}

	payloads := make([][]byte, len(jobs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.fetchParallelism)
	for i := range jobs {
		g.Go(func() error {
			data, err := s.blobs.Get(gctx, jobs[i].FilePath)
			if err != nil {
				return fmt.Errorf("fetch artifact for job %s: %w", jobs[i].ID, err)
			}
			payloads[i] = data
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return "", err
	}

	names := newNameSet()
	rows := make([]row, 0, len(jobs))
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for i, j := range jobs {
		fields := j.Fields()
		ext := filepath.Ext(j.SourceFilename)
		stem := template.Render(fields, trimExt(j.SourceFilename))
		name := names.unique(stem, ext)

		w, err := zw.Create(name)
		if err != nil {
			return "", fmt.Errorf("add %s to bundle: %w", name, err)
		}
		if _, err := w.Write(payloads[i]); err != nil {
			return "", fmt.Errorf("write %s to bundle: %w", name, err)
		}
		rows = append(rows, row{Filename: name, Fields: fields})
	}

	workbook, err := BuildWorkbook(rows, columns)
	if err != nil {
		return "", err
	}
	w, err := zw.Create(workbookName)
	if err != nil {
		return "", fmt.Errorf("add workbook to bundle: %w", err)
	}
	if _, err := w.Write(workbook); err != nil {
		return "", fmt.Errorf("write workbook to bundle: %w", err)
	}
	if err := zw.Close(); err != nil {
		return "", fmt.Errorf("finalize bundle: %w", err)
	}

	key := s.keys.BundleKey(session.UserID, session.ID)
	if err := s.blobs.Put(ctx, key, buf.Bytes()); err != nil {
		return "", fmt.Errorf("store bundle: %w", err)
	}

	s.logger.Info("bundle assembled",
		"session_id", session.ID,
		"files", len(jobs),
		"bytes", buf.Len(),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return key, nil
}

func trimExt(filename string) string {
	return filename[:len(filename)-len(filepath.Ext(filename))]
}

// nameSet deduplicates rendered filenames within one bundle.
type nameSet struct {
	mu   sync.Mutex
	used map[string]int
}

func newNameSet() *nameSet {
	return &nameSet{used: map[string]int{}}
}

func (n *nameSet) unique(stem, ext string) string {
	n.mu.Lock()
	defer n.mu.Unlock()
	key := stem + ext
	count := n.used[key]
	n.used[key]++
	if count == 0 {
		return key
	}
	return fmt.Sprintf("%s-%d%s", stem, count, ext)
}
