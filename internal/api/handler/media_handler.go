package handler

import (
	"bytes"
	log "log/slog"
	"path"
	"time"

	"yatube/internal/api/dto"
	"yatube/internal/pkg/consts"
	"yatube/internal/pkg/minio"
	"yatube/internal/pkg/redis"
	"yatube/internal/pkg/response"
	"yatube/internal/pkg/util"
	"yatube/internal/service"

	"github.com/disintegration/imaging"
	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

type MediaHandler struct{}

func NewMediaHandler() *MediaHandler {
	return &MediaHandler{}
}

// Upload 上传帖子配图，元信息暂存 Redis，发帖时再换取正式 URL
func (s *MediaHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	reader, err := file.Open()
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	defer func() { _ = reader.Close() }()

	contentType, err := util.GetSafeContentType(reader)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	if !util.IsImageContentType(contentType) {
		response.Error(c, service.ErrFileNotSupported)
		return
	}

	// 解码确认文件内容确实是图片，顺便拿到尺寸
	img, err := imaging.Decode(reader)
	if err != nil {
		response.Error(c, service.ErrFileNotSupported)
		return
	}
	bounds := img.Bounds()

	if _, err = reader.Seek(0, 0); err != nil {
		response.Error(c, service.UnExpectedError)
		return
	}

	ext := path.Ext(file.Filename)
	objectName := time.Now().Format("2006/01/02/") + uuid.NewString() + ext

	fileKey, err := minio.UploadFile(c.Request.Context(), objectName, reader, file.Size, contentType)
	if err != nil {
		log.ErrorContext(c, "MinIO upload failed", "err", err)
		response.Error(c, service.UnExpectedError)
		return
	}

	// 缩略图限制在 320x320 以内
	thumb := imaging.Fit(img, 320, 320, imaging.Lanczos)
	var thumbBuf bytes.Buffer
	thumbKey := ""
	if err = imaging.Encode(&thumbBuf, thumb, imaging.JPEG); err == nil {
		thumbKey, err = minio.UploadFile(c.Request.Context(), objectName+consts.ThumbSuffix,
			&thumbBuf, int64(thumbBuf.Len()), "image/jpeg")
		if err != nil {
			log.WarnContext(c, "thumbnail upload failed", "err", err)
			thumbKey = ""
		}
	} else {
		log.WarnContext(c, "thumbnail encode failed", "err", err)
	}

	meta := dto.MediaTempMetadata{
		MimeType:  contentType,
		Width:     bounds.Dx(),
		Height:    bounds.Dy(),
		CreatedAt: time.Now().Unix(),
	}
	metaBytes, _ := json.Marshal(meta)
	_ = redis.HSet(c.Request.Context(), consts.MediaTempKey, fileKey, string(metaBytes))

	thumbURL := ""
	if thumbKey != "" {
		thumbURL = minio.GetPublicURL(thumbKey)
	}

	log.InfoContext(c, "media upload success and metadata cached", "fileKey", fileKey, "type", contentType)
	response.Success(c, dto.MediaUploadDTO{
		Key:      fileKey,
		URL:      minio.GetPublicURL(fileKey),
		ThumbURL: thumbURL,
	})
}
