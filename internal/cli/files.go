package cli

import (
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/darkroom/server/internal/workflow"
)

// loadTasks reads each file into an upload task.
func loadTasks(paths []string) ([]workflow.Task, error) {
	tasks := make([]workflow.Task, 0, len(paths))
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", p, err)
		}
		abs, err := filepath.Abs(p)
		if err != nil {
			abs = p
		}
		tasks = append(tasks, workflow.Task{
			Filename:    filepath.Base(p),
			ContentType: contentType(p, data),
			LocalRef:    "file://" + filepath.ToSlash(abs),
			Data:        data,
		})
	}
	return tasks, nil
}

// contentType resolves from the extension, falling back to sniffing.
func contentType(path string, data []byte) string {
	if ct := mime.TypeByExtension(strings.ToLower(filepath.Ext(path))); ct != "" {
		if mediaType, _, err := mime.ParseMediaType(ct); err == nil {
			return mediaType
		}
		return ct
	}
	ct := http.DetectContentType(data)
	if mediaType, _, err := mime.ParseMediaType(ct); err == nil {
		return mediaType
	}
	return ct
}
