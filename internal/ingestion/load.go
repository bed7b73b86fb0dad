package ingestion

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Document is a loaded document and its cleaned text
type Document struct {
	Path string
	Text string
}

// LoadDocuments extracts text from every path concurrently, with at most limit
// files in flight. Results keep the order of paths. The first failure cancels the rest.
func LoadDocuments(ctx context.Context, paths []string, limit int) ([]Document, error) {
	docs := make([]Document, len(paths))
	if len(paths) == 0 {
		return docs, nil
	}

	g, gCtx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i, path := range paths {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			text, err := ExtractText(path)
			if err != nil {
				return err
			}
			// each goroutine owns its slot
			docs[i] = Document{Path: path, Text: text}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return docs, nil
}
