package utils

import (
	"context"
)

type contextKey string

const ContextUserIDKey contextKey = "userID"
const ContextFileKey contextKey = "uploadedFile"

// UploadedFile is a multipart file buffered fully in memory by the upload
// middleware, plus the metadata the client declared for it.
type UploadedFile struct {
	Data        []byte
	Filename    string
	ContentType string
	Size        int64
}

func GetUserIDFromContext(ctx context.Context) (string, bool) {
	userID := ctx.Value(ContextUserIDKey)
	userIDStr, ok := userID.(string)
	return userIDStr, ok
}

func GetFileFromContext(ctx context.Context) (*UploadedFile, bool) {
	file, ok := ctx.Value(ContextFileKey).(*UploadedFile)
	return file, ok
}
