package services

import (
	"fmt"
	"time"

	content "github.com/abdelrahmanmoahmed59-afk/act-website--sub000/internal/domain/entities/content"
	"github.com/abdelrahmanmoahmed59-afk/act-website--sub000/internal/infrastructure/media"
	"github.com/abdelrahmanmoahmed59-afk/act-website--sub000/internal/infrastructure/observability/logging"
	persistence "github.com/abdelrahmanmoahmed59-afk/act-website--sub000/internal/infrastructure/persistence/content"
	"github.com/abdelrahmanmoahmed59-afk/act-website--sub000/internal/infrastructure/persistence/store"
)

// UploadService stores upload binaries and tracks them in the upload ledger
type UploadService struct {
	repo      *persistence.UploadRepository
	processor *media.Processor
	logger    *logging.ChanneledLogger
}

// NewUploadService creates a new upload service
func NewUploadService(repo *persistence.UploadRepository, processor *media.Processor, logger *logging.ChanneledLogger) *UploadService {
	return &UploadService{repo: repo, processor: processor, logger: logger}
}

// UploadResult is the contract returned to the dashboard after an upload
type UploadResult struct {
	ID   int    `json:"id"`
	URL  string `json:"url"`
	Mime string `json:"mime"`
	Size int64  `json:"size"`
}

// Store processes the upload binary and records it in the ledger
func (s *UploadService) Store(data []byte, originalName string) (*UploadResult, error) {
	stored, err := s.processor.Store(data, originalName)
	if err != nil {
		return nil, err
	}

	upload := &content.Upload{
		FileName:     stored.FileName,
		WebPFileName: stored.WebPFileName,
		OriginalName: originalName,
		Mime:         stored.Mime,
		Size:         stored.Size,
		Width:        stored.Width,
		Height:       stored.Height,
		CreatedAt:    time.Now().UTC().Format(time.RFC3339),
	}

	created, err := s.repo.Create(upload)
	if err != nil {
		// Ledger write failed: don't leave an orphan binary behind.
		s.processor.Remove(stored.FileName, stored.WebPFileName)
		return nil, err
	}

	s.logger.Media().Info("Upload stored", "id", created.ID, "file", created.FileName, "mime", created.Mime)

	return &UploadResult{
		ID:   created.ID,
		URL:  fmt.Sprintf("/api/uploads/%d", created.ID),
		Mime: created.Mime,
		Size: created.Size,
	}, nil
}

// Get returns the ledger record for an upload id, nil when absent
func (s *UploadService) Get(id int) (*content.Upload, error) {
	return s.repo.GetByID(id)
}

// FilePath resolves an upload record to the absolute path of its binary
func (s *UploadService) FilePath(upload *content.Upload) string {
	return s.processor.PathFor(upload.FileName)
}

// List returns the full ledger for the dashboard
func (s *UploadService) List() ([]*content.Upload, error) {
	return s.repo.List(store.ListOptions[*content.Upload]{})
}

// Delete removes the ledger record and its binaries
func (s *UploadService) Delete(id int) (bool, error) {
	upload, err := s.repo.GetByID(id)
	if err != nil {
		return false, err
	}
	if upload == nil {
		return false, nil
	}

	removed, err := s.repo.Delete(id)
	if err != nil {
		return false, err
	}
	if removed {
		s.processor.Remove(upload.FileName, upload.WebPFileName)
		s.logger.Media().Info("Upload deleted", "id", id, "file", upload.FileName)
	}
	return removed, nil
}
