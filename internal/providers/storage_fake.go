package providers

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"sync"
)

// FakeStorageProvider keeps uploaded files in memory. Selected with
// STORAGE_PROVIDER=fake; used in development and in tests.
type FakeStorageProvider struct {
	mu    sync.Mutex
	files map[string][]byte
}

func NewFakeStorageProvider() *FakeStorageProvider {
	return &FakeStorageProvider{files: make(map[string][]byte)}
}

func (p *FakeStorageProvider) UploadFile(ctx context.Context, reader io.Reader, size int64, folder, fileName, contentType string) (UploadResult, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return UploadResult{}, err
	}

	objectName := path.Join(folder, fileName)

	p.mu.Lock()
	p.files[objectName] = data
	p.mu.Unlock()

	return UploadResult{
		FileName: objectName,
		FileURL:  fmt.Sprintf("fake://%s", objectName),
	}, nil
}

func (p *FakeStorageProvider) DeleteFile(ctx context.Context, fileURL string) error {
	objectName := strings.TrimPrefix(fileURL, "fake://")

	p.mu.Lock()
	delete(p.files, objectName)
	p.mu.Unlock()

	return nil
}

// File returns a stored object's bytes for assertions in tests.
func (p *FakeStorageProvider) File(objectName string) ([]byte, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	data, ok := p.files[objectName]
	return data, ok
}
