package application

import (
	"bytes"
	"context"
	"errors"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/edo-marketplace-admin/internal/domain/entity"
	"github.com/oksasatya/edo-marketplace-admin/internal/domain/repository"
	"github.com/oksasatya/edo-marketplace-admin/pkg/apiclient"
	"github.com/oksasatya/edo-marketplace-admin/pkg/csvexport"
)

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrProductNotFound     = errors.New("product not found")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrCategoryNotFound    = errors.New("category not found")
	ErrFestivalNotFound    = errors.New("festival not found")

	ErrInvalidStatus     = errors.New("invalid status")
	ErrInvalidRole       = errors.New("invalid role")
	ErrPriceAboveLimit   = errors.New("price exceeds maximum product price")
	ErrInvalidProduct    = errors.New("title must be 1-255 characters and price greater than 0")
	ErrInvalidDateRange  = errors.New("invalid date range")
	ErrNotDisputed       = errors.New("transaction is not disputed")
	ErrUnknownProvider   = errors.New("unknown payment provider")
	ErrInvalidSettings   = errors.New("invalid settings")
	ErrNotificationsOff  = errors.New("notifications are not configured")
	ErrAudienceMissing   = errors.New("notification audience not configured")
	ErrCategoryNameTaken = errors.New("category name already exists")
	ErrNameRequired      = errors.New("name must not be blank")
)

// JobPublisher queues background jobs such as outgoing email.
type JobPublisher interface {
	PublishJSON(ctx context.Context, body any) error
}

// ExportArchiver stores a copy of a CSV export and returns where it lives.
type ExportArchiver interface {
	Archive(ctx context.Context, filename, contentType string, r io.Reader) (string, error)
}

// ActivityRecorder persists and searches the admin audit trail.
type ActivityRecorder interface {
	Record(ctx context.Context, a entity.Activity) error
	Search(ctx context.Context, q string, size int) ([]entity.Activity, error)
}

// Export is a rendered CSV download.
type Export struct {
	Filename    string
	ContentType string
	Body        []byte
	URL         string // archive location, empty when not archived
}

// Load sources.
const (
	SourceAPI  = "api"
	SourceMock = "mock"
)

// LoadResult reports where a view's data came from.
type LoadResult struct {
	View   string `json:"view"`
	Source string `json:"source"`
	Count  int    `json:"count"`
	Error  string `json:"error,omitempty"`
}

// Deps are the collaborators shared by every view service. Any of them may be nil.
type Deps struct {
	API       *apiclient.Client
	Archiver  ExportArchiver
	Activity  ActivityRecorder
	Publisher JobPublisher
	Logger    *logrus.Logger
}

func (d Deps) log() *logrus.Logger {
	if d.Logger == nil {
		return logrus.StandardLogger()
	}
	return d.Logger
}

// loadView fetches path and replaces the view store, keeping fallback on failure.
func loadView[T any](ctx context.Context, d Deps, view, path string, fallback []T, store repository.ViewStore[T]) LoadResult {
	res := apiclient.FetchWithFallback(ctx, d.API, path, fallback)
	store.Replace(res.Data)

	out := LoadResult{View: view, Source: SourceAPI, Count: len(res.Data)}
	if res.Fallback {
		out.Source = SourceMock
		out.Error = "Failed to load " + view
		if !errors.Is(res.Err, apiclient.ErrNotConfigured) {
			d.log().WithError(res.Err).WithField("path", path).Warn("view load failed, using mock data")
		}
	}
	return out
}

// export renders rows and archives them when an archiver is configured.
// Archive failures are logged and never fail the export.
func export[T any](ctx context.Context, d Deps, filename string, cols []csvexport.Column[T], rows []T) (Export, error) {
	body, err := csvexport.Bytes(cols, rows)
	if err != nil {
		return Export{}, err
	}
	out := Export{Filename: filename, ContentType: csvexport.ContentType, Body: body}
	if d.Archiver != nil {
		url, aErr := d.Archiver.Archive(ctx, filename, csvexport.ContentType, bytes.NewReader(body))
		if aErr != nil {
			d.log().WithError(aErr).WithField("file", filename).Warn("export archive failed")
		} else {
			out.URL = url
		}
	}
	return out, nil
}

// record appends to the audit trail. Failures are logged only.
func record(ctx context.Context, d Deps, action, entityName, id, detail string) {
	if d.Activity == nil {
		return
	}
	a := entity.Activity{
		ID:       uuid.NewString(),
		Action:   action,
		Entity:   entityName,
		EntityID: id,
		Detail:   detail,
		At:       time.Now().UTC(),
	}
	if err := d.Activity.Record(ctx, a); err != nil {
		d.log().WithError(err).WithFields(logrus.Fields{"action": action, "entity": entityName, "id": id}).Warn("activity record failed")
	}
}

// notFound maps repository.ErrNotFound to the service sentinel.
func notFound(err, sentinel error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return sentinel
	}
	return err
}
