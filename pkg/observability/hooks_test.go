package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	// Render hooks
	r := NoopRenderHooks{}
	r.OnLoadStart(ctx, "charts.toml")
	r.OnLoadComplete(ctx, "charts.toml", 3, time.Second, nil)
	r.OnRenderStart(ctx, "bar", "revenue")
	r.OnRenderComplete(ctx, "bar", "revenue", 12, time.Second, nil)

	// Cache hooks
	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "artifact")
	c.OnCacheMiss(ctx, "artifact")
	c.OnCacheSet(ctx, "artifact", 1024)

	// HTTP hooks
	h := NoopHTTPHooks{}
	h.OnRequest(ctx, "GET", "/charts/revenue.svg")
	h.OnResponse(ctx, "GET", "/charts/revenue.svg", 200, time.Second)
	h.OnError(ctx, "GET", "/charts/revenue.svg", nil)
}

func TestGlobalHooksRegistry(t *testing.T) {
	// Reset to known state
	Reset()

	// Verify defaults are noop
	if _, ok := Render().(NoopRenderHooks); !ok {
		t.Error("Render() should return NoopRenderHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("HTTP() should return NoopHTTPHooks by default")
	}

	// Set custom hooks
	customRender := &testRenderHooks{}
	SetRenderHooks(customRender)
	if Render() != customRender {
		t.Error("SetRenderHooks should set custom hooks")
	}

	customCache := &testCacheHooks{}
	SetCacheHooks(customCache)
	if Cache() != customCache {
		t.Error("SetCacheHooks should set custom hooks")
	}

	customHTTP := &testHTTPHooks{}
	SetHTTPHooks(customHTTP)
	if HTTP() != customHTTP {
		t.Error("SetHTTPHooks should set custom hooks")
	}

	// Reset and verify
	Reset()
	if _, ok := Render().(NoopRenderHooks); !ok {
		t.Error("Reset() should restore NoopRenderHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testRenderHooks{}
	SetRenderHooks(custom)

	// Setting nil should be ignored
	SetRenderHooks(nil)

	if Render() != custom {
		t.Error("SetRenderHooks(nil) should be ignored")
	}

	Reset()
}

func TestCustomHooksReceiveEvents(t *testing.T) {
	Reset()
	defer Reset()

	custom := &testRenderHooks{}
	SetRenderHooks(custom)

	Render().OnRenderStart(context.Background(), "pie", "share")
	Render().OnRenderComplete(context.Background(), "pie", "share", 4, time.Millisecond, nil)

	if custom.started != 1 || custom.elements != 4 {
		t.Errorf("custom hooks = %+v, want one start and 4 elements", custom)
	}
}

// Test implementations
type testRenderHooks struct {
	NoopRenderHooks
	started  int
	elements int
}

func (h *testRenderHooks) OnRenderStart(context.Context, string, string) { h.started++ }
func (h *testRenderHooks) OnRenderComplete(_ context.Context, _, _ string, elements int, _ time.Duration, _ error) {
	h.elements += elements
}

type testCacheHooks struct{ NoopCacheHooks }
type testHTTPHooks struct{ NoopHTTPHooks }
