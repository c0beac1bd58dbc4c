package resume

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned by repositories when no resume matches the id.
var ErrNotFound = errors.New("resume not found")

// CandidateInfo — контактные данные кандидата. Заполняется из резюме и
// правится кандидатом до старта интервью.
type CandidateInfo struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	ResumeRef string `json:"resumeRef,omitempty"`
}

// Resume хранит метаданные загруженного файла.
type Resume struct {
	ID         uuid.UUID `json:"id"`
	Filename   string    `json:"filename"`
	MimeType   string    `json:"mimeType"`
	Size       int64     `json:"size"`
	StorageURI string    `json:"storageUri,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Parsed хранит извлечённый из резюме текст.
type Parsed struct {
	ResumeID uuid.UUID
	Text     string
}

// Repository — порт доступа к резюме.
type Repository interface {
	Create(ctx context.Context, r Resume) error
	SaveParsed(ctx context.Context, p Parsed) error
	GetParsed(ctx context.Context, resumeID uuid.UUID) (Parsed, error)
	GetMeta(ctx context.Context, id uuid.UUID) (Resume, error)
}
