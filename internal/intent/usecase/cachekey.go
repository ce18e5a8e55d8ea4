package usecase

import (
	"crypto/md5"
	"encoding/hex"
)

// CacheKey is the lowercase hex MD5 of deviceID followed by text. No normalization.
func CacheKey(deviceID, text string) string {
	sum := md5.Sum([]byte(deviceID + text))
	return hex.EncodeToString(sum[:])
}
