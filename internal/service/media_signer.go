package service

import (
	"crypto/sha1"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// MediaSigner produces request signatures for the external image CDN so the
// browser can upload and delete assets directly without ever seeing the API
// secret. The CDN's scheme is a plain hash over the sorted parameter string
// with the secret appended.
type MediaSigner struct {
	apiSecret string
}

// NewMediaSigner creates a signer bound to the CDN API secret.
func NewMediaSigner(apiSecret string) *MediaSigner {
	return &MediaSigner{apiSecret: apiSecret}
}

// UploadSignature signs an upload request for the given target folder and
// client-supplied timestamp.
func (m *MediaSigner) UploadSignature(folder string, timestamp int64) string {
	payload := fmt.Sprintf("folder=%s&timestamp=%d%s", folder, timestamp, m.apiSecret)
	sum := sha256.Sum256([]byte(payload))
	return hex.EncodeToString(sum[:])
}

// DeleteSignature signs a delete request for the asset identified by its CDN
// public ID. The CDN's delete endpoint expects sha1 here, not sha256.
func (m *MediaSigner) DeleteSignature(publicID string, timestamp int64) string {
	payload := fmt.Sprintf("public_id=%s&timestamp=%d%s", publicID, timestamp, m.apiSecret)
	sum := sha1.Sum([]byte(payload))
	return hex.EncodeToString(sum[:])
}
