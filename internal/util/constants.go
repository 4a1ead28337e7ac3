package util

const (
	StorageLocal = "local"
	StorageMinio = "minio"
	StorageOSS   = "oss"
)

const (
	MimeImage       = "image/"
	MimeOctetStream = "application/octet-stream"
)
