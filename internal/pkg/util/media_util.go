package util

import (
	"io"
	"net/http"
	"strings"

	"yatube/internal/pkg/consts"
)

// GetSafeContentType 基于文件头嗅探真实的 MIME 类型，读取后回退到文件起点
func GetSafeContentType(reader io.ReadSeeker) (string, error) {
	head := make([]byte, 512)
	n, err := reader.Read(head)
	if err != nil && err != io.EOF {
		return "", err
	}
	if _, err = reader.Seek(0, io.SeekStart); err != nil {
		return "", err
	}
	return http.DetectContentType(head[:n]), nil
}

// IsImageContentType 判断 MIME 类型是否为图片
func IsImageContentType(contentType string) bool {
	return strings.HasPrefix(contentType, consts.MimePrefixImage)
}
