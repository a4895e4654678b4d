package util

import (
	"errors"
	"io"
	"mime"
	"net/http"
	"path"
	"strings"
)

// ValidateMimeType 读取前 512 字节嗅探 MIME 类型
// allowedTypes: 允许的 MIME 前缀或完整类型，如 "image/"
func ValidateMimeType(reader io.Reader, allowedTypes []string) (string, error) {
	buffer := make([]byte, 512)
	n, err := io.ReadFull(reader, buffer)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return "", err
	}

	mimeType := http.DetectContentType(buffer[:n])

	for _, allowed := range allowedTypes {
		if strings.HasPrefix(mimeType, allowed) {
			return mimeType, nil
		}
	}

	return mimeType, errors.New("invalid file type: " + mimeType)
}

// IsImage 检测是否为图片
func IsImage(mimeType string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(mimeType)), MimeImage)
}

// imageExtensions 允许落盘的图片类型，其余扩展名一律不用
var imageExtensions = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/gif":  ".gif",
	"image/webp": ".webp",
	"image/bmp":  ".bmp",
	"image/heic": ".heic",
	"image/heif": ".heif",
	"image/avif": ".avif",
}

// ImageExtension 依次按嗅探类型、声明类型、文件名确定扩展名和对应 MIME，
// 文件名只在扩展名属于白名单时采用，否则回落到 .png
func ImageExtension(sniffed, declared, filename string) (string, string) {
	for _, t := range []string{sniffed, declared} {
		mediaType, _, err := mime.ParseMediaType(t)
		if err != nil {
			continue
		}
		if ext, ok := imageExtensions[strings.ToLower(mediaType)]; ok {
			return ext, mediaType
		}
	}

	ext := strings.ToLower(path.Ext(filename))
	if ext == ".jpeg" {
		ext = ".jpg"
	}
	for mediaType, allowed := range imageExtensions {
		if allowed == ext {
			return ext, mediaType
		}
	}
	return DefaultImageExt, "image/png"
}
