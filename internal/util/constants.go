package util

const (
	StorageLocal = "local"
	StorageMinio = "minio"
	StorageS3    = "s3"
	StorageOSS   = "oss"
)

// 文件上传相关常量
const (
	MimeImage       = "image/"
	MimeOctetStream = "application/octet-stream"
	DefaultImageExt = ".png"
)

// SessionHeader 会话 ID 的请求头与 Cookie 名
const (
	SessionHeader = "X-Session-ID"
	SessionCookie = "sprintwise_session"
)
