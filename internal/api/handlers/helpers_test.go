package handlers_test

import (
	"io"
	"log/slog"
	"testing"

	"github.com/donaldgifford/ecycle/internal/engine"
	notifyMocks "github.com/donaldgifford/ecycle/internal/notify/mocks"
	storeMocks "github.com/donaldgifford/ecycle/internal/store/mocks"
)

func newTestEngine(t *testing.T) (*engine.Engine, *storeMocks.MockStore, *notifyMocks.MockNotifier) {
	t.Helper()

	ms := storeMocks.NewMockStore(t)
	mn := notifyMocks.NewMockNotifier(t)
	eng := engine.NewEngine(ms, mn,
		engine.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		engine.WithBaseURL("https://ecycle.example"),
	)
	return eng, ms, mn
}
