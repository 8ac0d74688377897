package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	s := NoopSortHooks{}
	s.OnSortStart(ctx, "quick", 50)
	s.OnSortComplete(ctx, "quick", 50, 412, time.Second, nil)

	r := NoopRenderHooks{}
	r.OnRenderStart(ctx, []string{"svg"})
	r.OnRenderComplete(ctx, []string{"svg"}, time.Second, nil)

	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "trace")
	c.OnCacheMiss(ctx, "trace")
	c.OnCacheSet(ctx, "trace", 1024)

	h := NoopHTTPHooks{}
	h.OnRequest(ctx, "GET", "/api/traces")
	h.OnResponse(ctx, "GET", "/api/traces", 200, time.Second)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := Sort().(NoopSortHooks); !ok {
		t.Error("Sort() should return NoopSortHooks by default")
	}
	if _, ok := Render().(NoopRenderHooks); !ok {
		t.Error("Render() should return NoopRenderHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("HTTP() should return NoopHTTPHooks by default")
	}

	customSort := &testSortHooks{}
	SetSortHooks(customSort)
	if Sort() != customSort {
		t.Error("SetSortHooks should set custom hooks")
	}

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

	Reset()
	if _, ok := Sort().(NoopSortHooks); !ok {
		t.Error("Reset() should restore NoopSortHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testSortHooks{}
	SetSortHooks(custom)

	// Setting nil should be ignored
	SetSortHooks(nil)

	if Sort() != custom {
		t.Error("SetSortHooks(nil) should be ignored")
	}

	Reset()
}

// Test implementations
type testSortHooks struct{ NoopSortHooks }
type testRenderHooks struct{ NoopRenderHooks }
type testCacheHooks struct{ NoopCacheHooks }
type testHTTPHooks struct{ NoopHTTPHooks }
