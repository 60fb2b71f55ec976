package scan_test

import (
	"context"
	"testing"
	"time"

	"github.com/mapacultural/editais"
	"github.com/mapacultural/editais/mock"
	"github.com/mapacultural/editais/scan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanner_FetchRetry(t *testing.T) {
	t.Parallel()

	fccSC := editais.Source{ID: "fcc-sc", Name: "FCC SC", URL: "https://www.fcc.sc.gov.br", Active: true, Category: editais.CategoryState}
	noDelays := []time.Duration{0, 0, 0}

	record := editais.Record{Title: "Edital", Link: "https://www.fcc.sc.gov.br/e", Source: "www.fcc.sc.gov.br", Relevance: 40}
	extractor := &mock.Extractor{
		ExtractFn: func(_ string, _ editais.Source, _ string) ([]editais.Record, error) {
			return []editais.Record{record}, nil
		},
	}

	t.Run("does not retry after a success", func(t *testing.T) {
		t.Parallel()

		calls := 0
		s := &scan.Scanner{
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, _ string) (string, error) {
					calls++
					return "<html></html>", nil
				},
			},
			Extractors:  registryOf(extractor),
			RetryDelays: noDelays,
		}

		result, err := s.Scan(context.Background(), "edital", []editais.Source{fccSC}, nil)

		require.NoError(t, err)
		assert.Equal(t, 1, result.Scanned)
		assert.Equal(t, 1, calls)
	})

	t.Run("retries until an attempt succeeds", func(t *testing.T) {
		t.Parallel()

		calls := 0
		s := &scan.Scanner{
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, _ string) (string, error) {
					calls++
					if calls < 3 {
						return "", editais.Errorf(editais.EUNAVAILABLE, "fonte indisponível")
					}
					return "<html></html>", nil
				},
			},
			Extractors:  registryOf(extractor),
			RetryDelays: noDelays,
		}

		result, err := s.Scan(context.Background(), "edital", []editais.Source{fccSC}, nil)

		require.NoError(t, err)
		assert.Equal(t, 1, result.Scanned)
		assert.Equal(t, 0, result.Failed)
		assert.Equal(t, 3, calls)
	})

	t.Run("degrades the source after exhausting attempts", func(t *testing.T) {
		t.Parallel()

		calls := 0
		s := &scan.Scanner{
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, _ string) (string, error) {
					calls++
					return "", editais.Errorf(editais.EUNAVAILABLE, "fonte indisponível")
				},
			},
			Extractors:  registryOf(extractor),
			RetryDelays: noDelays,
		}

		var failures []scan.ProgressEvent
		progress := func(event scan.ProgressEvent) {
			if event.Type == scan.ProgressFailed {
				failures = append(failures, event)
			}
		}

		result, err := s.Scan(context.Background(), "edital", []editais.Source{fccSC}, progress)

		require.NoError(t, err)
		assert.Equal(t, 1, result.Failed)
		assert.Equal(t, 4, calls) // 1 initial + 3 retries
		require.Len(t, failures, 1)
		assert.Equal(t, editais.EUNAVAILABLE, editais.ErrorCode(failures[0].Error))
	})

	t.Run("stops retrying when the context is canceled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		calls := 0
		s := &scan.Scanner{
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, _ string) (string, error) {
					calls++
					cancel()
					return "", editais.Errorf(editais.EUNAVAILABLE, "fonte indisponível")
				},
			},
			Extractors:  registryOf(extractor),
			RetryDelays: []time.Duration{time.Second},
		}

		_, err := s.Scan(ctx, "edital", []editais.Source{fccSC}, nil)

		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 1, calls)
	})

	t.Run("falls back to the browser only after the retry budget", func(t *testing.T) {
		t.Parallel()

		httpCalls := 0
		s := &scan.Scanner{
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, _ string) (string, error) {
					httpCalls++
					return "", editais.Errorf(editais.EUNAVAILABLE, "fonte indisponível")
				},
			},
			Browser:     staticFetcher("<html>renderizado</html>"),
			Extractors:  registryOf(extractor),
			RetryDelays: noDelays,
		}

		result, err := s.Scan(context.Background(), "edital", []editais.Source{fccSC}, nil)

		require.NoError(t, err)
		assert.Equal(t, 1, result.Scanned)
		assert.Equal(t, 4, httpCalls)
	})
}
