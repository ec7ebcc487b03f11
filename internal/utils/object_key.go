package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"
)

// GenerateObjectKey generates a blob key in the format <projectID>-<unix millis>-<hex>.<ext>
func GenerateObjectKey(projectID, ext string, now time.Time) (string, error) {
	bytes := make([]byte, 4)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}

	ext = strings.TrimPrefix(strings.ToLower(ext), ".")
	return fmt.Sprintf("%s-%d-%s.%s",
		projectID,
		now.UnixMilli(),
		hex.EncodeToString(bytes),
		ext,
	), nil
}
