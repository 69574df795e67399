package pages_test

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"hostel/navigation"
	"hostel/pages"
	"hostel/session"
	"hostel/transport"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newTestApp(input string) *pages.App {
	client := transport.New("http://127.0.0.1:1/api", time.Second, zap.NewNop())
	console := pages.NewConsole(strings.NewReader(input), io.Discard)
	return pages.NewApp(client, navigation.NewRouter(), session.NewStore(), console, zap.NewNop())
}

// runWithin fails the test if the page loop is still alive after the timeout.
func runWithin(t *testing.T, app *pages.App, ctx context.Context, timeout time.Duration) {
	t.Helper()
	done := make(chan struct{})
	go func() {
		app.Run(ctx)
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(timeout):
		t.Fatal("page loop kept running after input ended")
	}
}

func TestRunExitsWhenInputEnds(t *testing.T) {
	runWithin(t, newTestApp(""), context.Background(), 2*time.Second)
}

func TestRunExitsOnQuitCommand(t *testing.T) {
	runWithin(t, newTestApp("quit\n"), context.Background(), 2*time.Second)
}

func TestRunHonorsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	runWithin(t, newTestApp("quit\n"), ctx, 2*time.Second)
}

func TestConsoleEOF(t *testing.T) {
	console := pages.NewConsole(strings.NewReader("one line\n"), io.Discard)

	assert.Equal(t, "one line", console.Prompt("first"))
	assert.False(t, console.EOF())

	assert.Empty(t, console.Prompt("second"))
	assert.True(t, console.EOF())

	// exhausted input keeps answering empty instead of blocking
	assert.Empty(t, console.Prompt("third"))
	assert.False(t, console.Confirm("sure?"))
	assert.Equal(t, 7, console.PromptInt("count", 7))
}
