package download

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/457992195/BGmi/internal/config"
	bgmihttp "github.com/457992195/BGmi/internal/http"
	ioutils "github.com/457992195/BGmi/internal/io"
	"github.com/457992195/BGmi/internal/resolve"
	"golang.org/x/sync/errgroup"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents a download progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

const defaultWorkers = 4

// Manager coordinates bulk cover downloads.
type Manager struct {
	cfg    *config.Settings
	client *bgmihttp.Client
	paths  *resolve.PathConfig

	totalFiles      int32
	downloadedFiles int32

	onProgress func(ProgressEvent)
}

// NewManager creates a new download Manager.
//
// onProgress receives one event per noteworthy step and may be nil.
func NewManager(cfg *config.Settings, onProgress func(ProgressEvent)) *Manager {
	return &Manager{
		cfg:    cfg,
		client: bgmihttp.NewClient(),
		paths: &resolve.PathConfig{
			SaveRoot:  cfg.SavePath,
			Overrides: cfg.SavePathMap,
		},
		onProgress: onProgress,
	}
}

// DownloadCovers fetches every URL in the list across a bounded
// worker pool and writes the results under <save_path>/cover/.
//
// Results are slotted by input index so each response is paired with
// the URL that produced it; the files themselves may land on disk in
// any order since every URL resolves to its own path. A failed or
// empty fetch is skipped silently, with no retry and no partial file.
// The call returns only after all workers have finished.
func (m *Manager) DownloadCovers(ctx context.Context, coverURLs []string) error {
	if len(coverURLs) == 0 {
		return nil
	}

	atomic.StoreInt32(&m.totalFiles, int32(len(coverURLs)))
	atomic.StoreInt32(&m.downloadedFiles, 0)

	workers := m.cfg.MaxConcurrentCoverDownloads
	if workers <= 0 {
		workers = defaultWorkers
	}

	results := make([][]byte, len(coverURLs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, coverURL := range coverURLs {
		i, coverURL := i, coverURL
		g.Go(func() error {
			m.progress(ProgressEvent{Message: fmt.Sprintf("Download: %s", coverURL), Level: LevelInfo})

			body, err := m.client.Fetch(ctx, coverURL)
			if err != nil {
				m.progress(ProgressEvent{Message: fmt.Sprintf("Error downloading %s: %v", coverURL, err), Level: LevelWarning})
				return nil // keep the pool going
			}

			results[i] = body
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	for i, body := range results {
		if len(body) == 0 {
			continue
		}
		if err := m.writeCover(coverURLs[i], body); err != nil {
			m.progress(ProgressEvent{Message: fmt.Sprintf("Error saving %s: %v", coverURLs[i], err), Level: LevelWarning})
			continue
		}
		atomic.AddInt32(&m.downloadedFiles, 1)
	}

	return nil
}

// GetProgress returns current download progress.
func (m *Manager) GetProgress() (downloaded, total int32) {
	return atomic.LoadInt32(&m.downloadedFiles), atomic.LoadInt32(&m.totalFiles)
}

func (m *Manager) writeCover(coverURL string, body []byte) error {
	dir, file := resolve.CoverPath(m.paths, coverURL)

	if err := ioutils.EnsureDir(dir); err != nil {
		return err
	}

	if m.cfg.ConvertCoverToJPEG {
		if shrunk, err := ioutils.ShrinkToJPEG(body, m.cfg.CoverMaxSize); err == nil {
			body = shrunk
		}
		// On decode failure the raw bytes are written unchanged.
	}

	if err := ioutils.WriteFile(file, body); err != nil {
		return err
	}

	m.progress(ProgressEvent{Message: fmt.Sprintf("Saved: %s", file), Level: LevelVerbose})
	return nil
}

func (m *Manager) progress(event ProgressEvent) {
	if m.onProgress != nil {
		m.onProgress(event)
	}
}
