package snapclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	snapdomain "github.com/vfg2006/snapchat-marketing-api/infrastructure/integrator/snap/domain"
	"github.com/vfg2006/snapchat-marketing-api/internal/config"
	"github.com/vfg2006/snapchat-marketing-api/pkg/apiErrors"
	"github.com/vfg2006/snapchat-marketing-api/pkg/log"
	"github.com/vfg2006/snapchat-marketing-api/pkg/utils"
)

const uploadLargeFailedMessage = "Upload large media failed"

// CheckUploadLargeMedia valida os argumentos do upload em partes sem fazer I/O de rede
func (c *SnapClient) CheckUploadLargeMedia(oauthAccessToken, mediaID, fileName string, chunks []string) error {
	_, err := c.checkUploadLargeMedia(oauthAccessToken, mediaID, fileName, chunks)
	return err
}

// checkUploadLargeMedia devolve também o tamanho total das partes, usado no INIT
func (c *SnapClient) checkUploadLargeMedia(oauthAccessToken, mediaID, fileName string, chunks []string) (int64, error) {
	if err := checkToken(oauthAccessToken); err != nil {
		return 0, err
	}

	var v violations
	v.require(present(mediaID), mediaIDRequired)
	v.require(present(fileName), "The file name is required")
	v.require(len(chunks) > 0, "The chunk list is required")

	var total int64
	limit := c.cfg.Media.MaxChunkSize
	for _, chunk := range chunks {
		info, err := os.Stat(chunk)
		if err != nil || info.IsDir() {
			v.add(fmt.Sprintf("The chunk %s doesn't exist", chunk))
			continue
		}
		if info.Size() > limit {
			v.add(fmt.Sprintf("The chunk %s max length mustn't exceed %s", chunk, utils.FormatMegabytes(limit)))
		}
		total += info.Size()
	}

	return total, v.err()
}

// UploadLargeMedia envia um arquivo já dividido em partes: INIT, um ADD por parte
// (na ordem recebida, part_number começando em 1) e FINALIZE. A primeira falha
// interrompe o fluxo. Retorna o ID da mídia devolvido pelo FINALIZE.
func (c *SnapClient) UploadLargeMedia(ctx context.Context, oauthAccessToken, mediaID, fileName string, chunks []string) (string, error) {
	fileSize, err := c.checkUploadLargeMedia(oauthAccessToken, mediaID, fileName, chunks)
	if err != nil {
		return "", err
	}

	ctx, _ = log.WithCorrelationID(ctx)
	logger := c.logger.WithContext(ctx).WithField("media_id", mediaID)

	upload, err := c.initLargeUpload(ctx, oauthAccessToken, mediaID, fileName, fileSize, len(chunks))
	if err != nil {
		return "", err
	}
	logger.WithField("upload_id", upload.UploadID).Infof("snap: large upload started with %d parts", len(chunks))

	for i, chunk := range chunks {
		partNumber := i + 1
		if err := c.addLargeUploadPart(ctx, oauthAccessToken, upload, partNumber, chunk); err != nil {
			logger.WithError(err).Errorf("snap: part %d/%d failed", partNumber, len(chunks))
			return "", err
		}
		logger.Debugf("snap: part %d/%d sent", partNumber, len(chunks))
	}

	id, err := c.finalizeLargeUpload(ctx, oauthAccessToken, upload)
	if err != nil {
		return "", err
	}
	logger.Info("snap: large upload finalized")

	return id, nil
}

func (c *SnapClient) initLargeUpload(ctx context.Context, oauthAccessToken, mediaID, fileName string, fileSize int64, parts int) (*snapdomain.LargeMediaUpload, error) {
	endpoint, err := c.resolve(config.OpMediaUploadLarge, params{"media_id": mediaID})
	if err != nil {
		return nil, err
	}

	req := c.newRequest(ctx, oauthAccessToken).
		SetQueryParam("action", "INIT").
		SetMultipartFormData(map[string]string{
			"file_name":       fileName,
			"file_size":       strconv.FormatInt(fileSize, 10),
			"number_of_parts": strconv.Itoa(parts),
		})

	body, err := c.execute(req, http.MethodPost, endpoint)
	if err != nil {
		return nil, err
	}

	upload, err := decodeBody[snapdomain.LargeMediaUpload](body)
	if err != nil {
		return nil, err
	}
	if upload.UploadID == "" || upload.AddPath == "" || upload.FinalizePath == "" {
		return nil, apiErrors.NewResponseError(uploadLargeFailedMessage)
	}

	return upload, nil
}

func (c *SnapClient) addLargeUploadPart(ctx context.Context, oauthAccessToken string, upload *snapdomain.LargeMediaUpload, partNumber int, chunk string) error {
	endpoint, err := c.absoluteURL(upload.AddPath)
	if err != nil {
		return err
	}

	file, err := os.Open(chunk)
	if err != nil {
		return apiErrors.NewExecutionError(err)
	}
	defer file.Close()

	req := c.newRequest(ctx, oauthAccessToken).
		SetMultipartFormData(map[string]string{
			"upload_id":   upload.UploadID,
			"part_number": strconv.Itoa(partNumber),
		}).
		SetFileReader("file", filepath.Base(chunk), file)

	body, err := c.execute(req, http.MethodPost, endpoint)
	if err != nil {
		return err
	}

	_, err = decodeBody[snapdomain.EnvelopeHeader](body)
	return err
}

func (c *SnapClient) finalizeLargeUpload(ctx context.Context, oauthAccessToken string, upload *snapdomain.LargeMediaUpload) (string, error) {
	endpoint, err := c.absoluteURL(upload.FinalizePath)
	if err != nil {
		return "", err
	}

	req := c.newRequest(ctx, oauthAccessToken).
		SetMultipartFormData(map[string]string{"upload_id": upload.UploadID})

	body, err := c.execute(req, http.MethodPost, endpoint)
	if err != nil {
		return "", err
	}

	var resp snapdomain.MediaUploadResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", apiErrors.NewResponseError(uploadLargeFailedMessage)
	}
	if !strings.EqualFold(resp.RequestStatus, "success") || resp.Result == nil {
		return "", apiErrors.NewResponseError(uploadLargeFailedMessage)
	}

	return resp.Result.ID, nil
}

// absoluteURL resolve add_path/finalize_path relativos contra o esquema e host da URL base
func (c *SnapClient) absoluteURL(path string) (string, error) {
	ref, err := url.Parse(path)
	if err != nil {
		return "", apiErrors.NewExecutionError(err)
	}
	if ref.IsAbs() {
		return ref.String(), nil
	}

	base, err := url.Parse(c.cfg.Snap.BaseURL)
	if err != nil {
		return "", apiErrors.NewExecutionError(err)
	}
	if !strings.HasPrefix(ref.Path, "/") {
		ref.Path = "/" + ref.Path
	}

	return base.ResolveReference(ref).String(), nil
}
