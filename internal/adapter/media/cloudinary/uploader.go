// Package cloudinary relays admin images to the Cloudinary media host.
package cloudinary

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"github.com/hotel-booking/hotel-booking-admin-system/internal/domain"
	"github.com/hotel-booking/hotel-booking-admin-system/internal/infrastructure/logger"
	"github.com/hotel-booking/hotel-booking-admin-system/internal/infrastructure/retry"
)

// DefaultFolder groups hotel images on the media host.
const DefaultFolder = "hotels"

// ErrNotConfigured is returned by Unavailable.
var ErrNotConfigured = errors.New("media host not configured")

// uploadAPI is the subset of the Cloudinary upload API the uploader calls.
type uploadAPI interface {
	Upload(ctx context.Context, file interface{}, params uploader.UploadParams) (*uploader.UploadResult, error)
}

// Credentials identify a Cloudinary account.
type Credentials struct {
	CloudName string
	APIKey    string
	APISecret string
}

// Uploader implements domain.ImageUploader.
type Uploader struct {
	api    uploadAPI
	folder string
	retry  retry.Config
	log    *logger.Logger
}

// New creates an uploader for the given account.
func New(creds Credentials, log *logger.Logger) (*Uploader, error) {
	cld, err := cloudinary.NewFromParams(creds.CloudName, creds.APIKey, creds.APISecret)
	if err != nil {
		return nil, fmt.Errorf("cloudinary: %w", err)
	}
	return newUploader(&cld.Upload, log), nil
}

func newUploader(api uploadAPI, log *logger.Logger) *Uploader {
	if log == nil {
		log = logger.Nop()
	}
	log = log.WithComponent("cloudinary")
	return &Uploader{
		api:    api,
		folder: DefaultFolder,
		retry: retry.RelayConfig.WithOnRetry(func(err error, next time.Duration) {
			log.Warn().Err(err).Dur("retry_in", next).Msg("image upload failed, retrying")
		}),
		log: log,
	}
}

// Upload stores img and returns its HTTPS URL.
func (u *Uploader) Upload(ctx context.Context, img domain.Image) (string, error) {
	if len(img.Data) == 0 {
		return "", fmt.Errorf("image %q is empty", img.Filename)
	}

	return retry.DoWithResult(ctx, func() (string, error) {
		res, err := u.api.Upload(ctx, bytes.NewReader(img.Data), uploader.UploadParams{
			Folder: u.folder,
		})
		if err != nil {
			return "", err
		}
		// The API reports rejected uploads in the result rather than as an error.
		if res.Error.Message != "" {
			return "", retry.NewPermanent(fmt.Errorf("cloudinary rejected %q: %s", img.Filename, res.Error.Message))
		}
		if res.SecureURL == "" {
			return "", retry.NewPermanent(fmt.Errorf("cloudinary returned no url for %q", img.Filename))
		}

		u.log.Debug().Str("filename", img.Filename).Str("public_id", res.PublicID).Msg("image uploaded")
		return res.SecureURL, nil
	}, u.retry)
}

// Unavailable rejects every upload. It stands in when no account is configured.
type Unavailable struct{}

// Upload implements domain.ImageUploader.
func (Unavailable) Upload(context.Context, domain.Image) (string, error) {
	return "", ErrNotConfigured
}

var (
	_ domain.ImageUploader = (*Uploader)(nil)
	_ domain.ImageUploader = Unavailable{}
)
