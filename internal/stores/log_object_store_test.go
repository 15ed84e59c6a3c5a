package stores

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"alb-analytics/internal/models"
	"alb-analytics/internal/shared/filestorages"
	"alb-analytics/internal/shared/filestorages/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const objectKey = models.LogObjectKey("AWSLogs/1/elasticloadbalancing/r/2023/05/01/1_elasticloadbalancing_r_app.lb.abc_20230501T1205Z_10.0.0.1_x.log.gz")

func TestLogObjectStore_Put_UsesBaseName(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewLogObjectStore(mockFileStorage)
	ctx := context.Background()

	expectedKey := "downloads/1_elasticloadbalancing_r_app.lb.abc_20230501T1205Z_10.0.0.1_x.log.gz"
	mockFileStorage.EXPECT().
		Put(ctx, expectedKey, gomock.Any(), filestorages.PutOptions{AllowOverwrite: false}).
		DoAndReturn(func(ctx context.Context, key string, r io.Reader, opts filestorages.PutOptions) (*filestorages.PutResult, error) {
			data, err := io.ReadAll(r)
			require.NoError(t, err)
			assert.Equal(t, "gz-bytes", string(data))
			return &filestorages.PutResult{FileKey: key}, nil
		})

	err := store.Put(ctx, objectKey, strings.NewReader("gz-bytes"), false)
	assert.NoError(t, err)
}

func TestLogObjectStore_Put_AlreadyExists(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewLogObjectStore(mockFileStorage)

	mockFileStorage.EXPECT().
		Put(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, filestorages.ErrFileAlreadyExists)

	err := store.Put(context.Background(), objectKey, strings.NewReader(""), false)
	assert.ErrorIs(t, err, ErrLogObjectAlreadyExist)
}

func TestLogObjectStore_Put_Overwrite(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewLogObjectStore(mockFileStorage)

	mockFileStorage.EXPECT().
		Put(gomock.Any(), gomock.Any(), gomock.Any(), filestorages.PutOptions{AllowOverwrite: true}).
		Return(&filestorages.PutResult{}, nil)

	assert.NoError(t, store.Put(context.Background(), objectKey, strings.NewReader(""), true))
}

func TestLogObjectStore_Put_StorageError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewLogObjectStore(mockFileStorage)

	diskErr := errors.New("no space left on device")
	mockFileStorage.EXPECT().
		Put(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, diskErr)

	err := store.Put(context.Background(), objectKey, strings.NewReader(""), false)
	assert.ErrorIs(t, err, diskErr)
	assert.NotErrorIs(t, err, ErrLogObjectAlreadyExist)
}

func TestLogObjectStore_ExistsAndOpen(t *testing.T) {
	t.Parallel()

	fileStorage, err := filestorages.NewFileStorage(t.TempDir())
	require.NoError(t, err)
	store := NewLogObjectStore(fileStorage)
	ctx := context.Background()

	exists, err := store.Exists(ctx, objectKey)
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = store.Open(ctx, objectKey)
	assert.ErrorIs(t, err, ErrLogObjectNotCached)

	require.NoError(t, store.Put(ctx, objectKey, strings.NewReader("cached"), false))

	exists, err = store.Exists(ctx, objectKey)
	require.NoError(t, err)
	assert.True(t, exists)

	reader, err := store.Open(ctx, objectKey)
	require.NoError(t, err)
	defer reader.Close()
	data, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, "cached", string(data))
}
