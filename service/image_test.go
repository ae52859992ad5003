package service

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Xushengqwer/house_service/models/dto"
	"github.com/Xushengqwer/house_service/myErrors"
	"github.com/Xushengqwer/house_service/testhelpers"
)

type fakeCOS struct {
	uploaded map[string]string
	deleted  []string
}

func (f *fakeCOS) UploadFile(ctx context.Context, objectKey string, reader io.Reader, size int64, contentType string) (string, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return "", err
	}
	if f.uploaded == nil {
		f.uploaded = map[string]string{}
	}
	f.uploaded[objectKey] = string(data)
	return "https://cdn.example.com/" + objectKey, nil
}

func (f *fakeCOS) DeleteObject(ctx context.Context, objectKey string) error {
	f.deleted = append(f.deleted, objectKey)
	return nil
}

func newTestImageService(cos *fakeCOS) *imageService {
	svc := NewImageService(cos, testhelpers.NopLogger()).(*imageService)
	svc.now = func() time.Time { return time.Date(2024, 3, 9, 12, 0, 0, 0, time.UTC) }
	return svc
}

func TestUploadImage(t *testing.T) {
	cos := &fakeCOS{}
	svc := newTestImageService(cos)

	result, err := svc.UploadImage(bg, dto.ImageKindGallery, "Фасад.JPG", strings.NewReader("img"), 3, "image/jpeg")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(result.ObjectKey, "houses/images/gallery/20240309/"))
	require.True(t, strings.HasSuffix(result.ObjectKey, ".jpg"))
	require.Equal(t, "https://cdn.example.com/"+result.ObjectKey, result.URL)
	require.Equal(t, "img", cos.uploaded[result.ObjectKey])
}

func TestUploadImage_Rejects(t *testing.T) {
	svc := newTestImageService(&fakeCOS{})

	_, err := svc.UploadImage(bg, dto.ImageKind("avatar"), "a.png", strings.NewReader("x"), 1, "image/png")
	require.ErrorIs(t, err, myErrors.ErrInvalidImageKind)

	_, err = svc.UploadImage(bg, dto.ImageKindLayout, "a.pdf", strings.NewReader("x"), 1, "application/pdf")
	require.ErrorIs(t, err, myErrors.ErrInvalidImageFile)

	_, err = svc.UploadImage(bg, dto.ImageKindLayout, "a.png", strings.NewReader(""), 0, "image/png")
	require.ErrorIs(t, err, myErrors.ErrInvalidImageFile)
}

func TestDeleteImage(t *testing.T) {
	cos := &fakeCOS{}
	svc := newTestImageService(cos)

	require.ErrorIs(t, svc.DeleteImage(bg, "avatars/1.png"), myErrors.ErrInvalidObjectKey)
	require.NoError(t, svc.DeleteImage(bg, "/houses/images/layout/20240309/x.png"))
	require.Equal(t, []string{"houses/images/layout/20240309/x.png"}, cos.deleted)
}
