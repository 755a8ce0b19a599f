package uploading

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	snapdomain "github.com/vfg2006/snapchat-marketing-api/infrastructure/integrator/snap/domain"
	"github.com/vfg2006/snapchat-marketing-api/internal/config"
	"github.com/vfg2006/snapchat-marketing-api/pkg/log"
	"github.com/vfg2006/snapchat-marketing-api/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_uploader.go -package=mocks

// MediaUploader é o subconjunto do cliente usado pelo upload
type MediaUploader interface {
	CreateMedia(ctx context.Context, oauthAccessToken string, media *snapdomain.Media) (*snapdomain.Media, error)
	UploadMediaImage(ctx context.Context, oauthAccessToken, mediaID, filePath string) (*snapdomain.MediaFile, error)
	UploadMediaVideo(ctx context.Context, oauthAccessToken, mediaID, filePath string) (*snapdomain.MediaFile, error)
	UploadLargeMedia(ctx context.Context, oauthAccessToken, mediaID, fileName string, chunks []string) (string, error)
}

type Uploader interface {
	Upload(ctx context.Context, params UploadParams) (*UploadResult, error)
}

type UploadParams struct {
	Token       string
	AdAccountID string
	FilePath    string
	Name        string // Opcional; padrão é o nome do arquivo
}

type UploadResult struct {
	MediaID string               `json:"media_id"`
	Type    snapdomain.MediaType `json:"type"`
	Parts   int                  `json:"parts"`
}

type Service struct {
	client MediaUploader
	cfg    *config.Config
}

func NewService(client MediaUploader, cfg *config.Config) Uploader {
	return &Service{
		client: client,
		cfg:    cfg,
	}
}

// Upload cria a mídia e envia o arquivo. Vídeos acima do limite de envio único
// são divididos em partes e enviados pelo fluxo INIT/ADD/FINALIZE.
func (s *Service) Upload(ctx context.Context, params UploadParams) (*UploadResult, error) {
	ctx, _ = log.WithCorrelationID(ctx)
	logger := log.ForContext(ctx).WithFields(log.Fields{
		"ad_account_id": params.AdAccountID,
		"file":          params.FilePath,
	})

	mediaType, err := detectMediaType(params.FilePath)
	if err != nil {
		logger.WithError(err).Warn("upload: media type not supported")
		return nil, NewUploadError(ErrUnsupportedMediaType, CodeUnsupportedMedia, params.FilePath, err)
	}

	name := params.Name
	if name == "" {
		name = filepath.Base(params.FilePath)
	}

	media, err := s.client.CreateMedia(ctx, params.Token, &snapdomain.Media{
		AdAccountID: params.AdAccountID,
		Name:        name,
		Type:        mediaType,
	})
	if err != nil {
		logger.WithError(err).Error("upload: failed to create media")
		return nil, NewUploadError(ErrCreateMedia, CodeCreateMedia, params.FilePath, err)
	}
	if media == nil || media.ID == "" {
		return nil, NewUploadError(ErrCreateMedia, CodeCreateMedia, params.FilePath, fmt.Errorf("media created without ID"))
	}

	logger = logger.WithField("media_id", media.ID)
	result := &UploadResult{MediaID: media.ID, Type: mediaType, Parts: 1}

	switch mediaType {
	case snapdomain.MediaTypeImage:
		_, err = s.client.UploadMediaImage(ctx, params.Token, media.ID, params.FilePath)
	default:
		result.Parts, err = s.uploadVideo(ctx, params.Token, media.ID, params.FilePath)
	}
	if err != nil {
		var uploadErr *UploadError
		if errors.As(err, &uploadErr) {
			return nil, uploadErr
		}
		logger.WithError(err).Error("upload: failed to upload media")
		return nil, NewUploadError(ErrUploadMedia, CodeUploadMedia, params.FilePath, err)
	}

	logger.WithField("parts", result.Parts).Info("upload: media uploaded")
	return result, nil
}

func (s *Service) uploadVideo(ctx context.Context, token, mediaID, filePath string) (int, error) {
	info, err := os.Stat(filePath)
	if err != nil {
		return 0, err
	}

	if info.Size() <= s.cfg.Media.MaxVideoSize {
		_, err := s.client.UploadMediaVideo(ctx, token, mediaID, filePath)
		return 1, err
	}

	dir, err := os.MkdirTemp("", "snap-upload-*")
	if err != nil {
		return 0, NewUploadError(ErrSplitFile, CodeSplitFile, filePath, err)
	}
	defer os.RemoveAll(dir)

	chunks, err := utils.SplitFile(filePath, dir, s.cfg.Media.MaxChunkSize)
	if err != nil {
		return 0, NewUploadError(ErrSplitFile, CodeSplitFile, filePath, err)
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"media_id": mediaID,
		"parts":    len(chunks),
	}).Debug("upload: file split into chunks")

	if _, err := s.client.UploadLargeMedia(ctx, token, mediaID, filepath.Base(filePath), chunks); err != nil {
		return 0, err
	}
	return len(chunks), nil
}

// detectMediaType usa o conteúdo do arquivo, não a extensão
func detectMediaType(filePath string) (snapdomain.MediaType, error) {
	mtype, err := mimetype.DetectFile(filePath)
	if err != nil {
		return "", err
	}

	switch {
	case strings.HasPrefix(mtype.String(), "image/"):
		return snapdomain.MediaTypeImage, nil
	case strings.HasPrefix(mtype.String(), "video/"):
		return snapdomain.MediaTypeVideo, nil
	default:
		return "", fmt.Errorf("%s isn't an image or a video", mtype.String())
	}
}
