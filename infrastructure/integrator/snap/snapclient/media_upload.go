package snapclient

import (
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"
	snapdomain "github.com/vfg2006/snapchat-marketing-api/infrastructure/integrator/snap/domain"
	"github.com/vfg2006/snapchat-marketing-api/internal/config"
	"github.com/vfg2006/snapchat-marketing-api/pkg/apiErrors"
	"github.com/vfg2006/snapchat-marketing-api/pkg/utils"
)

const (
	fileRequired        = "The file is required"
	uploadFailedMessage = "Upload media failed"
)

var supportedImages = []string{"image/jpeg", "image/png"}

// UploadMediaVideo envia um vídeo de até MEDIA_MAX_VIDEO_SIZE em uma única requisição.
// Vídeos maiores devem usar UploadLargeMedia.
func (c *SnapClient) UploadMediaVideo(ctx context.Context, oauthAccessToken, mediaID, filePath string) (*snapdomain.MediaFile, error) {
	if err := checkToken(oauthAccessToken); err != nil {
		return nil, err
	}
	if err := c.validateVideo(mediaID, filePath); err != nil {
		return nil, err
	}

	return c.uploadMedia(ctx, oauthAccessToken, mediaID, filePath)
}

func (c *SnapClient) UploadMediaImage(ctx context.Context, oauthAccessToken, mediaID, filePath string) (*snapdomain.MediaFile, error) {
	if err := checkToken(oauthAccessToken); err != nil {
		return nil, err
	}
	if err := c.validateImage(mediaID, filePath); err != nil {
		return nil, err
	}

	return c.uploadMedia(ctx, oauthAccessToken, mediaID, filePath)
}

func (c *SnapClient) uploadMedia(ctx context.Context, oauthAccessToken, mediaID, filePath string) (*snapdomain.MediaFile, error) {
	endpoint, err := c.resolve(config.OpMediaUpload, params{"media_id": mediaID})
	if err != nil {
		return nil, err
	}

	file, err := os.Open(filePath)
	if err != nil {
		return nil, apiErrors.NewExecutionError(err)
	}
	defer file.Close()

	req := c.newRequest(ctx, oauthAccessToken).
		SetFileReader("file", filepath.Base(filePath), file)

	body, err := c.execute(req, http.MethodPost, endpoint)
	if err != nil {
		return nil, err
	}

	resp, err := decodeBody[snapdomain.MediaUploadResponse](body)
	if err != nil {
		return nil, err
	}
	if resp.Result == nil {
		return nil, apiErrors.NewResponseError(uploadFailedMessage)
	}

	return resp.Result, nil
}

// validateFile cobre as cláusulas comuns a vídeo e imagem e devolve o tamanho do arquivo.
// ok é falso quando não há arquivo para inspecionar.
func validateFile(v *violations, mediaID, filePath string) (size int64, ok bool) {
	v.require(present(mediaID), mediaIDRequired)
	if !present(filePath) {
		v.add(fileRequired)
		return 0, false
	}

	info, err := os.Stat(filePath)
	if err != nil || info.IsDir() {
		v.add(fmt.Sprintf("The file %s doesn't exist", filePath))
		return 0, false
	}
	return info.Size(), true
}

func (c *SnapClient) validateVideo(mediaID, filePath string) error {
	var v violations
	size, ok := validateFile(&v, mediaID, filePath)
	if ok && size > c.cfg.Media.MaxVideoSize {
		v.add(fmt.Sprintf("The video max length mustn't exceed %s", utils.FormatMegabytes(c.cfg.Media.MaxVideoSize)))
	}
	return v.err()
}

func (c *SnapClient) validateImage(mediaID, filePath string) error {
	var v violations
	size, ok := validateFile(&v, mediaID, filePath)
	if !ok {
		return v.err()
	}

	if size > c.cfg.Media.MaxImageSize {
		v.add(fmt.Sprintf("The image max length mustn't exceed %s", utils.FormatMegabytes(c.cfg.Media.MaxImageSize)))
	}

	width, height, err := imageDimensions(filePath)
	if err != nil {
		v.add("The file isn't a supported image")
		return v.err()
	}

	minWidth, minHeight := c.cfg.Media.MinImageWidth, c.cfg.Media.MinImageHeight
	if width < minWidth || height < minHeight {
		v.add(fmt.Sprintf("The image minimum resolution is %dx%d", minWidth, minHeight))
	}
	if width*16 != height*9 {
		v.add("The image aspect ratio must be 9:16")
	}
	return v.err()
}

// imageDimensions detecta o formato pelo conteúdo e lê apenas o cabeçalho da imagem
func imageDimensions(filePath string) (int, int, error) {
	mtype, err := mimetype.DetectFile(filePath)
	if err != nil {
		return 0, 0, err
	}
	if !mimetype.EqualsAny(mtype.String(), supportedImages...) {
		return 0, 0, fmt.Errorf("unsupported image type %s", mtype.String())
	}

	file, err := os.Open(filePath)
	if err != nil {
		return 0, 0, err
	}
	defer file.Close()

	cfg, _, err := image.DecodeConfig(file)
	if err != nil {
		return 0, 0, err
	}
	return cfg.Width, cfg.Height, nil
}
