package uploading_test

import (
	"context"
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	snapdomain "github.com/vfg2006/snapchat-marketing-api/infrastructure/integrator/snap/domain"
	"github.com/vfg2006/snapchat-marketing-api/internal/config"
	"github.com/vfg2006/snapchat-marketing-api/internal/usecases/uploading"
	"github.com/vfg2006/snapchat-marketing-api/internal/usecases/uploading/mocks"
	"github.com/vfg2006/snapchat-marketing-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

// Cabeçalho mínimo de um MP4 (caixa ftyp), suficiente para a detecção por conteúdo
var mp4Header = []byte{
	0x00, 0x00, 0x00, 0x18, 'f', 't', 'y', 'p', 'i', 's', 'o', 'm',
	0x00, 0x00, 0x02, 0x00, 'i', 's', 'o', 'm', 'i', 's', 'o', '2',
}

func testConfig() *config.Config {
	return &config.Config{
		Media: config.Media{
			MaxImageSize: 5 * 1024 * 1024,
			MaxVideoSize: 64,
			MaxChunkSize: 32,
		},
	}
}

func writeVideo(t *testing.T, size int) string {
	t.Helper()

	content := make([]byte, size)
	copy(content, mp4Header)

	path := filepath.Join(t.TempDir(), "clip.mp4")
	require.NoError(t, os.WriteFile(path, content, 0o600))
	return path
}

func writeImage(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "banner.png")
	file, err := os.Create(path)
	require.NoError(t, err)
	defer file.Close()

	require.NoError(t, png.Encode(file, image.NewRGBA(image.Rect(0, 0, 9, 16))))
	return path
}

func TestUpload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockMediaUploader(ctrl)
	service := uploading.NewService(mockClient, testConfig())

	tests := []struct {
		name     string
		path     func(t *testing.T) string
		setup    func(path string)
		validate func(t *testing.T, result *uploading.UploadResult, err error)
	}{
		{
			name: "Imagem - cria mídia IMAGE e envia em uma requisição",
			path: writeImage,
			setup: func(path string) {
				mockClient.EXPECT().
					CreateMedia(gomock.Any(), "token", &snapdomain.Media{
						AdAccountID: "account-1",
						Name:        "banner.png",
						Type:        snapdomain.MediaTypeImage,
					}).
					Return(&snapdomain.Media{ID: "media-1"}, nil)

				mockClient.EXPECT().
					UploadMediaImage(gomock.Any(), "token", "media-1", path).
					Return(&snapdomain.MediaFile{ID: "media-1"}, nil)
			},
			validate: func(t *testing.T, result *uploading.UploadResult, err error) {
				require.NoError(t, err)
				assert.Equal(t, "media-1", result.MediaID)
				assert.Equal(t, snapdomain.MediaTypeImage, result.Type)
				assert.Equal(t, 1, result.Parts)
			},
		},
		{
			name: "Vídeo pequeno - envio único",
			path: func(t *testing.T) string { return writeVideo(t, 48) },
			setup: func(path string) {
				mockClient.EXPECT().
					CreateMedia(gomock.Any(), "token", gomock.Any()).
					Return(&snapdomain.Media{ID: "media-2"}, nil)

				mockClient.EXPECT().
					UploadMediaVideo(gomock.Any(), "token", "media-2", path).
					Return(&snapdomain.MediaFile{ID: "media-2"}, nil)
			},
			validate: func(t *testing.T, result *uploading.UploadResult, err error) {
				require.NoError(t, err)
				assert.Equal(t, snapdomain.MediaTypeVideo, result.Type)
				assert.Equal(t, 1, result.Parts)
			},
		},
		{
			name: "Vídeo grande - dividido em partes e enviado em partes",
			path: func(t *testing.T) string { return writeVideo(t, 80) },
			setup: func(path string) {
				mockClient.EXPECT().
					CreateMedia(gomock.Any(), "token", gomock.Any()).
					Return(&snapdomain.Media{ID: "media-3"}, nil)

				mockClient.EXPECT().
					UploadLargeMedia(gomock.Any(), "token", "media-3", "clip.mp4", gomock.Len(3)).
					DoAndReturn(func(_ context.Context, _, _, _ string, chunks []string) (string, error) {
						var total int64
						for _, chunk := range chunks {
							info, err := os.Stat(chunk)
							require.NoError(t, err)
							assert.LessOrEqual(t, info.Size(), int64(32))
							total += info.Size()
						}
						assert.EqualValues(t, 80, total)
						return "media-3", nil
					})
			},
			validate: func(t *testing.T, result *uploading.UploadResult, err error) {
				require.NoError(t, err)
				assert.Equal(t, "media-3", result.MediaID)
				assert.Equal(t, 3, result.Parts)
			},
		},
		{
			name:  "Arquivo que não é mídia - UPL_001 sem chamar a API",
			path:  writeText,
			setup: func(string) {},
			validate: func(t *testing.T, result *uploading.UploadResult, err error) {
				assertUploadError(t, err, uploading.CodeUnsupportedMedia, uploading.ErrUnsupportedMediaType)
				assert.Nil(t, result)
			},
		},
		{
			name: "Falha ao criar mídia - UPL_002 preserva o erro do cliente",
			path: writeImage,
			setup: func(string) {
				mockClient.EXPECT().
					CreateMedia(gomock.Any(), "token", gomock.Any()).
					Return(nil, apiErrors.FromStatus(403, nil))
			},
			validate: func(t *testing.T, result *uploading.UploadResult, err error) {
				assertUploadError(t, err, uploading.CodeCreateMedia, uploading.ErrCreateMedia)
				assert.True(t, apiErrors.IsResponse(err))
			},
		},
		{
			name: "Falha no envio - UPL_003",
			path: func(t *testing.T) string { return writeVideo(t, 48) },
			setup: func(string) {
				mockClient.EXPECT().
					CreateMedia(gomock.Any(), "token", gomock.Any()).
					Return(&snapdomain.Media{ID: "media-4"}, nil)

				mockClient.EXPECT().
					UploadMediaVideo(gomock.Any(), "token", "media-4", gomock.Any()).
					Return(nil, apiErrors.NewArgumentError("The video max length mustn't exceed 31.8 MB"))
			},
			validate: func(t *testing.T, result *uploading.UploadResult, err error) {
				assertUploadError(t, err, uploading.CodeUploadMedia, uploading.ErrUploadMedia)
				assert.True(t, apiErrors.IsArgument(err))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := tt.path(t)
			tt.setup(path)

			result, err := service.Upload(context.Background(), uploading.UploadParams{
				Token:       "token",
				AdAccountID: "account-1",
				FilePath:    path,
			})
			tt.validate(t, result, err)
		})
	}
}

func TestUploadRemovesTemporaryChunks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockMediaUploader(ctrl)
	service := uploading.NewService(mockClient, testConfig())

	var received []string
	mockClient.EXPECT().CreateMedia(gomock.Any(), gomock.Any(), gomock.Any()).Return(&snapdomain.Media{ID: "media-5"}, nil)
	mockClient.EXPECT().
		UploadLargeMedia(gomock.Any(), gomock.Any(), "media-5", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _, _ string, chunks []string) (string, error) {
			received = chunks
			return "", errors.New("connection reset by peer")
		})

	_, err := service.Upload(context.Background(), uploading.UploadParams{
		Token:       "token",
		AdAccountID: "account-1",
		FilePath:    writeVideo(t, 70),
		Name:        "Trailer",
	})
	assertUploadError(t, err, uploading.CodeUploadMedia, uploading.ErrUploadMedia)

	require.NotEmpty(t, received)
	for _, chunk := range received {
		_, statErr := os.Stat(chunk)
		assert.True(t, os.IsNotExist(statErr), "chunk %s should have been removed", chunk)
	}
}

func TestUploadNilContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockMediaUploader(ctrl)
	service := uploading.NewService(mockClient, testConfig())

	mockClient.EXPECT().
		CreateMedia(gomock.Not(gomock.Nil()), "token", gomock.Any()).
		Return(&snapdomain.Media{ID: "media-6"}, nil)
	mockClient.EXPECT().
		UploadMediaImage(gomock.Not(gomock.Nil()), "token", "media-6", gomock.Any()).
		Return(&snapdomain.MediaFile{ID: "media-6"}, nil)

	var nilCtx context.Context
	result, err := service.Upload(nilCtx, uploading.UploadParams{
		Token:       "token",
		AdAccountID: "account-1",
		FilePath:    writeImage(t),
	})
	require.NoError(t, err)
	assert.Equal(t, "media-6", result.MediaID)
}

func writeText(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "notes.mp4")
	require.NoError(t, os.WriteFile(path, []byte("definitely not a video"), 0o600))
	return path
}

func assertUploadError(t *testing.T, err error, code string, base error) {
	t.Helper()

	require.Error(t, err)
	var uploadErr *uploading.UploadError
	require.ErrorAs(t, err, &uploadErr)
	assert.Equal(t, code, uploadErr.Code)
	assert.ErrorIs(t, err, base)
}
