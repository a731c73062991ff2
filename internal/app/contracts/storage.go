package contracts

import "context"

type Storage interface {
	// UploadBase64Image stores decoded image bytes under fileName and returns
	// the public URL of the stored object.
	UploadBase64Image(ctx context.Context, data []byte, fileName, fileExtension string) (string, error)
}
