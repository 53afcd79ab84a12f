package cloudinary

import (
	"context"
	"errors"
	"io"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hotel-booking/hotel-booking-admin-system/internal/domain"
	"github.com/hotel-booking/hotel-booking-admin-system/internal/infrastructure/retry"
)

type fakeAPI struct {
	calls   atomic.Int32
	failFor int32
	result  uploader.UploadResult
	body    []byte
	folder  string
}

func (f *fakeAPI) Upload(ctx context.Context, file interface{}, params uploader.UploadParams) (*uploader.UploadResult, error) {
	n := f.calls.Add(1)
	if n <= f.failFor {
		return nil, errors.New("connection reset")
	}
	f.body, _ = io.ReadAll(file.(io.Reader))
	f.folder = params.Folder
	res := f.result
	return &res, nil
}

func fastUploader(api uploadAPI) *Uploader {
	u := newUploader(api, nil)
	u.retry = u.retry.WithInitialDelay(time.Millisecond).WithMaxDelay(time.Millisecond)
	return u
}

func TestUploader_Upload(t *testing.T) {
	api := &fakeAPI{result: uploader.UploadResult{SecureURL: "https://res.example.com/a.jpg", PublicID: "hotels/a"}}
	u := fastUploader(api)

	url, err := u.Upload(context.Background(), domain.Image{Filename: "a.jpg", Data: []byte("jpeg")})

	require.NoError(t, err)
	assert.Equal(t, "https://res.example.com/a.jpg", url)
	assert.Equal(t, []byte("jpeg"), api.body)
	assert.Equal(t, DefaultFolder, api.folder)
}

func TestUploader_RetriesTransientFailures(t *testing.T) {
	api := &fakeAPI{failFor: 2, result: uploader.UploadResult{SecureURL: "https://res.example.com/b.jpg"}}
	u := fastUploader(api)

	url, err := u.Upload(context.Background(), domain.Image{Filename: "b.jpg", Data: []byte("x")})

	require.NoError(t, err)
	assert.Equal(t, "https://res.example.com/b.jpg", url)
	assert.Equal(t, int32(3), api.calls.Load())
}

func TestUploader_GivesUpAfterMaxAttempts(t *testing.T) {
	api := &fakeAPI{failFor: 10}
	u := fastUploader(api)

	_, err := u.Upload(context.Background(), domain.Image{Filename: "c.jpg", Data: []byte("x")})

	require.Error(t, err)
	assert.Equal(t, int32(retry.RelayConfig.MaxAttempts), api.calls.Load())
}

func TestUploader_RejectedUploadIsNotRetried(t *testing.T) {
	fake := &fakeAPI{result: uploader.UploadResult{Error: api.ErrorResp{Message: "Invalid image file"}}}
	u := fastUploader(fake)

	_, err := u.Upload(context.Background(), domain.Image{Filename: "d.txt", Data: []byte("x")})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid image file")
	assert.Equal(t, int32(1), fake.calls.Load())
}

func TestUploader_EmptyImage(t *testing.T) {
	api := &fakeAPI{}
	u := fastUploader(api)

	_, err := u.Upload(context.Background(), domain.Image{Filename: "empty.jpg"})

	require.Error(t, err)
	assert.Equal(t, int32(0), api.calls.Load())
}

func TestUnavailable(t *testing.T) {
	_, err := Unavailable{}.Upload(context.Background(), domain.Image{Filename: "a.jpg", Data: []byte("x")})
	assert.ErrorIs(t, err, ErrNotConfigured)
}
