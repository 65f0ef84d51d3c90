// processor.go
package main

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
)

// ArticleImporter handles the main workflow
type ArticleImporter struct {
	loader   *RecordLoader
	renderer *DocumentRenderer
	slugs    SlugGenerator
	writer   FileWriter
	settings *Settings
}

// NewArticleImporter creates an importer from settings and flag overrides
func NewArticleImporter(overrides *ConfigOverrides) (*ArticleImporter, error) {
	config, err := NewConfig(overrides)
	if err != nil {
		return nil, err
	}

	templateText, err := config.GetTemplate()
	if err != nil {
		return nil, fmt.Errorf("loading template: %w", err)
	}

	renderer, err := NewDocumentRenderer(templateText, config.Settings.ConvertHTML)
	if err != nil {
		return nil, err
	}

	return &ArticleImporter{
		loader:   NewRecordLoader(),
		renderer: renderer,
		slugs:    NewRandomSlugGenerator(slugLength),
		writer:   NewDirWriter(config.Settings.OutputDirectory),
		settings: config.Settings,
	}, nil
}

// InputFile returns the configured input source
func (ai *ArticleImporter) InputFile() string {
	return ai.settings.InputFile
}

// ImportFile loads every record from source before writing any file
func (ai *ArticleImporter) ImportFile(ctx context.Context, source string) ([]ProcessingResult, error) {
	records, err := ai.loader.Load(source)
	if err != nil {
		return nil, fmt.Errorf("loading input: %w", err)
	}
	return ai.Import(ctx, records)
}

// Import writes one document per record. Writes run on a worker pool and
// complete in any order; a failed record never stops the others. The returned
// results are in input order and the error joins every record failure.
func (ai *ArticleImporter) Import(ctx context.Context, records []InputRecord) ([]ProcessingResult, error) {
	results := make([]ProcessingResult, len(records))

	logger.Infof("Processing %d records...", len(records))

	workers := ai.settings.Workers
	if workers > len(records) {
		workers = len(records)
	}
	if workers < 1 {
		workers = 1
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				results[idx] = ai.ProcessRecord(idx, records[idx])
				logResult(results[idx])
			}
		}()
	}

	cancelFrom := func(i int) {
		for j := i; j < len(records); j++ {
			results[j] = ProcessingResult{
				Index:  j,
				Title:  recordTitle(records[j]),
				Status: StatusError,
				Error:  ctx.Err(),
			}
		}
	}

dispatch:
	for i := range records {
		if ctx.Err() != nil {
			cancelFrom(i)
			break
		}
		select {
		case <-ctx.Done():
			cancelFrom(i)
			break dispatch
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	var errs []error
	for _, result := range results {
		if result.Status == StatusError {
			errs = append(errs, fmt.Errorf("record %d: %w", result.Index, result.Error))
		}
	}

	logger.Infof("Done: %d written, %d failed", len(results)-len(errs), len(errs))

	return results, errors.Join(errs...)
}

// ProcessRecord renders and writes a single record
func (ai *ArticleImporter) ProcessRecord(index int, record InputRecord) ProcessingResult {
	result := ProcessingResult{Index: index, Title: recordTitle(record)}

	fail := func(err error) ProcessingResult {
		result.Status = StatusError
		result.Error = err
		return result
	}

	article, err := newArticle(record)
	if err != nil {
		return fail(err)
	}

	content, err := ai.renderer.Render(article)
	if err != nil {
		return fail(fmt.Errorf("rendering article: %w", err))
	}

	slug, err := ai.slugs.Generate()
	if err != nil {
		return fail(fmt.Errorf("generating slug: %w", err))
	}
	result.Filename = slug + ".md"

	debugLog("writing %s (%d bytes)", result.Filename, len(content))

	if err := ai.writer.WriteFile(result.Filename, []byte(content)); err != nil {
		return fail(fmt.Errorf("saving article: %w", err))
	}

	result.Status = StatusSuccess
	return result
}

func logResult(result ProcessingResult) {
	entry := logger.WithFields(logrus.Fields{
		"record": result.Index,
		"title":  result.Title,
	})
	if result.Status == StatusSuccess {
		entry.WithField("file", result.Filename).Infof("✓ Generated: %s", result.Filename)
		return
	}
	entry.WithError(result.Error).Error("✗ Failed")
}

func recordTitle(record InputRecord) string {
	if record.Title == nil {
		return ""
	}
	return *record.Title
}
