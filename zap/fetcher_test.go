package zap_test

import (
	"context"
	"testing"

	"github.com/jsimek/newsgrab"
	"github.com/jsimek/newsgrab/mock"
	newsgrabzap "github.com/jsimek/newsgrab/zap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observedLogger() (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return zap.New(core), logs
}

func TestLoggingFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("logs fetch with bytes and duration", func(t *testing.T) {
		t.Parallel()

		logger, logs := observedLogger()
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "<html>content</html>", nil
			},
		}

		fetcher := newsgrabzap.NewLoggingFetcher(inner, logger)
		html, err := fetcher.Fetch(context.Background(), "https://www.novinky.cz/clanek/a")

		require.NoError(t, err)
		assert.Equal(t, "<html>content</html>", html)

		entries := logs.FilterMessage("fetch").All()
		require.Len(t, entries, 1)
		fields := entries[0].ContextMap()
		assert.Equal(t, "https://www.novinky.cz/clanek/a", fields["url"])
		assert.EqualValues(t, 20, fields["bytes"])
		assert.Contains(t, fields, "duration")
	})

	t.Run("logs error code on failure", func(t *testing.T) {
		t.Parallel()

		logger, logs := observedLogger()
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "", newsgrab.Errorf(newsgrab.ETIMEOUT, "fetch timed out")
			},
		}

		fetcher := newsgrabzap.NewLoggingFetcher(inner, logger)
		_, err := fetcher.Fetch(context.Background(), "https://www.novinky.cz/clanek/a")

		require.Error(t, err)
		entries := logs.FilterMessage("fetch failed").All()
		require.Len(t, entries, 1)
		assert.Equal(t, newsgrab.ETIMEOUT, entries[0].ContextMap()["code"])
	})
}

func TestLoggingFetcher_Close(t *testing.T) {
	t.Parallel()

	logger, _ := observedLogger()
	closeCalled := false
	inner := &mock.Fetcher{
		CloseFn: func() error {
			closeCalled = true
			return nil
		},
	}

	fetcher := newsgrabzap.NewLoggingFetcher(inner, logger)
	require.NoError(t, fetcher.Close())
	assert.True(t, closeCalled)
}
