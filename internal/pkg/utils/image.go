package utils

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// DecodeBase64Image parses a data-URI encoded image ("data:image/png;base64,..")
// and returns the raw bytes plus the file extension derived from the MIME type.
func DecodeBase64Image(encoded string) ([]byte, string, error) {
	parts := strings.SplitN(encoded, ",", 2)
	if len(parts) != 2 || !strings.HasPrefix(parts[0], "data:image/") {
		return nil, "", fmt.Errorf("malformed base64 image payload")
	}
	mimePart := strings.TrimSuffix(strings.TrimPrefix(parts[0], "data:image/"), ";base64")
	data, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return nil, "", err
	}
	return data, "." + mimePart, nil
}

func ValidateImageFormat(extension string, allowed []string) error {
	for _, allowedExt := range allowed {
		if strings.EqualFold(extension, allowedExt) {
			return nil
		}
	}
	return fmt.Errorf("image format %s is not allowed", extension)
}

func ValidateImageSize(data []byte, maxSizeInMB int64) error {
	if int64(len(data)) > maxSizeInMB*1024*1024 {
		return fmt.Errorf("image exceeds maximum size of %dMB", maxSizeInMB)
	}
	return nil
}
