package util

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"
)

const datasetArchivePrefix = "datasets"

// ArchiveDataset uploads a raw dataset file to GCS and returns the gs:// URL
// and size. Archival is best-effort record keeping for re-imports; failures
// are the caller's to log, not to fail the import on.
func ArchiveDataset(data []byte, bucketName, objectName, contentType string) (string, int64, error) {
	ctx := context.Background()
	client, err := storage.NewClient(ctx)
	if err != nil {
		return "", 0, err
	}
	defer client.Close()

	w := client.Bucket(bucketName).Object(objectName).NewWriter(ctx)
	w.ContentType = contentType

	sizeBytes, err := w.Write(data)
	if err != nil {
		return "", 0, err
	}
	if err := w.Close(); err != nil {
		return "", 0, err
	}

	url := fmt.Sprintf("gs://%s/%s", bucketName, objectName)
	return url, int64(sizeBytes), nil
}

// ListDatasetArchives returns the object names of every archived dataset.
func ListDatasetArchives(bucketName string) ([]string, error) {
	ctx := context.Background()
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, err
	}
	defer client.Close()

	var names []string
	it := client.Bucket(bucketName).Objects(ctx, &storage.Query{Prefix: datasetArchivePrefix + "/"})
	for {
		obj, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		names = append(names, obj.Name)
	}

	return names, nil
}

func SanitizePart(s string) string {
	s = strings.TrimSpace(strings.ToLower(s))
	s = strings.ReplaceAll(s, " ", "_")
	re := regexp.MustCompile(`[^a-z0-9_\-]`)
	s = re.ReplaceAllString(s, "")
	if s == "" {
		return "unknown"
	}
	return s
}

// DatasetObjectName builds the archive object path for an uploaded dataset,
// timestamped so re-imports of the same file never collide.
func DatasetObjectName(filename string, at time.Time) string {
	base := filename
	if i := strings.LastIndex(base, "."); i > 0 {
		base = base[:i]
	}
	return fmt.Sprintf("%s/%s_%s.csv", datasetArchivePrefix, at.Format("20060102150405"), SanitizePart(base))
}
