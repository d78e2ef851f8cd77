package xvcache

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"go.uber.org/goleak"

	"github.com/omeyang/ipkit/pkg/util/xaddr"
	"github.com/omeyang/ipkit/pkg/util/xverify"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestNew(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		cache, err := New(Config{Size: 10, TTL: time.Minute})
		if err != nil {
			t.Fatalf("New failed: %v", err)
		}
		defer cache.Close()
	})

	t.Run("zero size", func(t *testing.T) {
		_, err := New(Config{Size: 0})
		if !errors.Is(err, ErrInvalidSize) {
			t.Errorf("expected ErrInvalidSize, got %v", err)
		}
	})

	t.Run("negative size", func(t *testing.T) {
		_, err := New(Config{Size: -1})
		if !errors.Is(err, ErrInvalidSize) {
			t.Errorf("expected ErrInvalidSize, got %v", err)
		}
	})

	t.Run("size exceeds max", func(t *testing.T) {
		_, err := New(Config{Size: maxSize + 1})
		if !errors.Is(err, ErrSizeExceedsMax) {
			t.Errorf("expected ErrSizeExceedsMax, got %v", err)
		}
	})

	t.Run("negative TTL", func(t *testing.T) {
		_, err := New(Config{Size: 10, TTL: -time.Second})
		if !errors.Is(err, ErrInvalidTTL) {
			t.Errorf("expected ErrInvalidTTL, got %v", err)
		}
	})

	t.Run("zero TTL (no expiration)", func(t *testing.T) {
		cache, err := New(Config{Size: 10, TTL: 0})
		if err != nil {
			t.Fatalf("New with zero TTL should succeed: %v", err)
		}
		defer cache.Close()
	})
}

func TestVerifyMatchesDirect(t *testing.T) {
	cache, err := New(Config{Size: 100, TTL: time.Minute})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer cache.Close()

	inputs := []string{
		"192.168.1.1",
		"192.168.1.1/24",
		"2001:db8::1",
		"300.1.1.1",
		"not an address",
	}
	for _, in := range inputs {
		want := xverify.Verify(in, xverify.CIDRAllow, xverify.WithCorrection(xverify.CorrectPretty))
		got := cache.Verify(in, xverify.CIDRAllow, xverify.WithCorrection(xverify.CorrectPretty))
		if got != want {
			t.Errorf("Verify(%q) = %+v, direct = %+v", in, got, want)
		}
		// 第二次命中缓存，结果必须一致
		again := cache.Verify(in, xverify.CIDRAllow, xverify.WithCorrection(xverify.CorrectPretty))
		if again != want {
			t.Errorf("cached Verify(%q) = %+v, direct = %+v", in, again, want)
		}
	}
}

func TestVerifyKeyIncludesPolicyAndOptions(t *testing.T) {
	cache, err := New(Config{Size: 100, TTL: time.Minute})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer cache.Close()

	const in = "10.0.0.0/8"

	// 同一输入在不同策略下结果不同，缓存不得串键
	if got := cache.Verify(in, xverify.CIDRAllow); !got.Valid {
		t.Errorf("CIDRAllow should accept %q", in)
	}
	if got := cache.Verify(in, xverify.CIDRReject); got.Valid {
		t.Errorf("CIDRReject should reject %q", in)
	}

	// 同一输入在不同选项下渲染不同
	plain := cache.Verify("2001:DB8::1", xverify.CIDRReject,
		xverify.WithCorrection(xverify.CorrectPretty))
	upper := cache.Verify("2001:DB8::1", xverify.CIDRReject,
		xverify.WithCorrection(xverify.CorrectPretty), xverify.WithUppercase())
	if plain.Corrected != "2001:db8::1" {
		t.Errorf("lowercase rendering = %q", plain.Corrected)
	}
	if upper.Corrected != "2001:DB8::1" {
		t.Errorf("uppercase rendering = %q", upper.Corrected)
	}
}

func TestStats(t *testing.T) {
	cache, err := New(Config{Size: 100, TTL: time.Minute})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer cache.Close()

	cache.Verify("192.168.1.1", xverify.CIDRReject)
	cache.Verify("192.168.1.1", xverify.CIDRReject)
	cache.Verify("192.168.1.1", xverify.CIDRReject)
	cache.Verify("10.0.0.1", xverify.CIDRReject)

	st := cache.Stats()
	if st.Hits != 2 {
		t.Errorf("Hits = %d, expected 2", st.Hits)
	}
	if st.Misses != 2 {
		t.Errorf("Misses = %d, expected 2", st.Misses)
	}
}

func TestLenAndClear(t *testing.T) {
	cache, err := New(Config{Size: 100, TTL: time.Minute})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer cache.Close()

	cache.Verify("192.168.1.1", xverify.CIDRReject)
	cache.Verify("192.168.1.2", xverify.CIDRReject)
	if n := cache.Len(); n != 2 {
		t.Errorf("Len = %d, expected 2", n)
	}

	cache.Clear()
	if n := cache.Len(); n != 0 {
		t.Errorf("Len after Clear = %d, expected 0", n)
	}

	// Clear 不重置统计
	if st := cache.Stats(); st.Misses != 2 {
		t.Errorf("Misses after Clear = %d, expected 2", st.Misses)
	}
}

func TestVerifyWithVersion(t *testing.T) {
	cache, err := New(Config{Size: 100, TTL: time.Minute})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer cache.Close()

	if got := cache.Verify("2001:db8::1", xverify.CIDRReject, xverify.WithVersion(xaddr.V4)); got.Valid {
		t.Error("forced V4 should reject an IPv6 literal")
	}
	if got := cache.Verify("2001:db8::1", xverify.CIDRReject, xverify.WithVersion(xaddr.V6)); !got.Valid {
		t.Error("forced V6 should accept an IPv6 literal")
	}
}

func TestCloseFallsBackToDirect(t *testing.T) {
	cache, err := New(Config{Size: 100, TTL: 50 * time.Millisecond})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	cache.Verify("192.168.1.1", xverify.CIDRReject)
	cache.Close()
	cache.Close() // 幂等

	if got := cache.Verify("192.168.1.1", xverify.CIDRReject); !got.Valid {
		t.Error("Verify after Close should still compute")
	}
	if n := cache.Len(); n != 0 {
		t.Errorf("Len after Close = %d, expected 0", n)
	}
}

func TestStopCleanupGoroutine_EdgeCases(t *testing.T) {
	if stopCleanupGoroutine(nil) {
		t.Error("nil input should return false")
	}
	if stopCleanupGoroutine(42) {
		t.Error("non-pointer input should return false")
	}

	type noDone struct{ Name string }
	if stopCleanupGoroutine(&noDone{Name: "test"}) {
		t.Error("struct without done field should return false")
	}

	type wrongDone struct{ done chan int }
	if stopCleanupGoroutine(&wrongDone{done: make(chan int)}) {
		t.Error("struct with chan int done should return false")
	}

	if stopCleanupGoroutine(&struct{ done chan struct{} }{}) {
		t.Error("struct with nil done should return false")
	}

	// 二次调用触发 recover（done 通道已关闭）：应返回 false 而非 panic
	type hasDone struct{ done chan struct{} }
	s := &hasDone{done: make(chan struct{})}
	if !stopCleanupGoroutine(s) {
		t.Error("first call should return true")
	}
	if stopCleanupGoroutine(s) {
		t.Error("second call (double close) should return false via recover")
	}
}

func TestStopCleanupGoroutine_UpstreamStructAssert(t *testing.T) {
	// 维护须知: 此测试验证上游 expirable.LRU 的内部结构未发生变化。
	// 如果此测试失败，说明上游升级改变了内部布局，需要更新 stopCleanupGoroutine。
	lru := expirable.NewLRU[string, int](10, nil, time.Minute)
	defer stopCleanupGoroutine(lru)

	v := reflect.ValueOf(lru)
	if v.Kind() != reflect.Pointer {
		t.Fatalf("expirable.NewLRU should return pointer, got %s", v.Kind())
	}

	doneField := v.Elem().FieldByName("done")
	if !doneField.IsValid() {
		t.Fatal("upstream expirable.LRU no longer has 'done' field; stopCleanupGoroutine needs update")
	}

	expectedType := reflect.TypeOf(make(chan struct{}))
	if doneField.Type() != expectedType {
		t.Fatalf("upstream 'done' field type changed from chan struct{} to %v; stopCleanupGoroutine needs update",
			doneField.Type())
	}
}
