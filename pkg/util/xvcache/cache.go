package xvcache

import (
	"reflect"
	"sync"
	"sync/atomic"
	"time"
	"unsafe"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/omeyang/ipkit/pkg/util/xverify"
)

// maxSize 缓存最大条目数上限。
const maxSize = 1 << 24 // 16,777,216

// key 是缓存键：同一输入在不同策略或选项下的结果互不混淆。
// xverify.Options 是 comparable 的值类型，整个 key 可直接作 map 键。
type key struct {
	input  string
	policy xverify.CIDRPolicy
	opts   xverify.Options
}

// Stats 是缓存命中统计的快照。
type Stats struct {
	Hits   uint64
	Misses uint64
}

// Config 定义缓存配置。
type Config struct {
	// Size 缓存最大条目数。
	// 必须大于 0 且不超过 16,777,216。
	Size int

	// TTL 条目过期时间。
	// 0 表示永不过期，不允许负值。
	TTL time.Duration
}

// Cache 记忆化 [xverify.VerifyWith] 的结果。
// 校验是纯函数，结果可无限期复用，TTL 只用于控制内存占用。
// 必须通过 [New] 创建，零值不可用。所有方法并发安全。
// 调用 Close 后，Verify 退化为直接计算（不读不写缓存）。
type Cache struct {
	lru       *expirable.LRU[key, xverify.Result]
	hits      atomic.Uint64
	misses    atomic.Uint64
	closed    atomic.Bool
	closeOnce sync.Once
}

// New 创建校验结果缓存。
// 如果 cfg.Size <= 0，返回 ErrInvalidSize。
// 如果 cfg.Size > maxSize (16,777,216)，返回 ErrSizeExceedsMax。
// 如果 cfg.TTL < 0，返回 ErrInvalidTTL。
func New(cfg Config) (*Cache, error) {
	if cfg.Size <= 0 {
		return nil, ErrInvalidSize
	}
	if cfg.Size > maxSize {
		return nil, ErrSizeExceedsMax
	}
	if cfg.TTL < 0 {
		return nil, ErrInvalidTTL
	}
	return &Cache{
		lru: expirable.NewLRU[key, xverify.Result](cfg.Size, nil, cfg.TTL),
	}, nil
}

// Verify 与 [xverify.Verify] 语义相同，结果按 (输入, 策略, 选项) 记忆化。
// 并发请求同一未缓存的键时可能重复计算，结果相同，最后写入者胜出。
func (c *Cache) Verify(s string, policy xverify.CIDRPolicy, opts ...xverify.Option) xverify.Result {
	var o xverify.Options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return c.VerifyWith(s, policy, o)
}

// VerifyWith 与 [Verify] 相同，参数以 [xverify.Options] 值传入。
func (c *Cache) VerifyWith(s string, policy xverify.CIDRPolicy, o xverify.Options) xverify.Result {
	if c.closed.Load() {
		return xverify.VerifyWith(s, policy, o)
	}

	k := key{input: s, policy: policy, opts: o}
	if res, ok := c.lru.Get(k); ok {
		c.hits.Add(1)
		return res
	}
	c.misses.Add(1)

	res := xverify.VerifyWith(s, policy, o)
	c.lru.Add(k, res)
	return res
}

// Stats 返回命中统计快照。
// 两个计数器分别原子读取，极端并发下快照可能不对应同一瞬间。
func (c *Cache) Stats() Stats {
	return Stats{
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
	}
}

// Len 返回当前缓存条目数。
// 返回值可能包含已过期但尚未被后台清理的条目。
// 缓存已关闭时返回 0。
func (c *Cache) Len() int {
	if c.closed.Load() {
		return 0
	}
	return c.lru.Len()
}

// Clear 清空所有缓存条目，统计计数器不重置。
// 缓存已关闭时静默忽略。
func (c *Cache) Clear() {
	if c.closed.Load() {
		return
	}
	c.lru.Purge()
}

// Close 关闭缓存，释放资源。幂等，可多次调用。
//
// Close 会清空缓存条目并停止 TTL 过期清理 goroutine。
// Close 后 Verify 仍可用，只是不再走缓存。
func (c *Cache) Close() {
	c.closed.Store(true)
	c.closeOnce.Do(func() {
		c.lru.Purge()
		stopCleanupGoroutine(c.lru)
	})
}

// stopCleanupGoroutine 停止 expirable.LRU 内部的清理 goroutine。
// 返回 true 表示成功停止，false 表示降级为无操作（上游结构变化或通道已关闭）。
//
// 设计决策: hashicorp/golang-lru/v2@v2.0.7 在 TTL > 0 时启动后台 goroutine 清理过期条目，
// 但其 Close() 方法被注释掉，无法通过公开 API 停止。此函数通过 reflect + unsafe
// 访问内部 done 通道 (类型 chan struct{}) 并关闭它，使后台 goroutine 退出。
//
// 维护须知: 升级 golang-lru 版本时，检查上游是否已实现公开的 Close() 方法。
// 若已实现，应移除此函数并直接调用上游 Close()。
func stopCleanupGoroutine(lru any) (stopped bool) {
	defer func() {
		// close(doneCh) 可能因通道已关闭而 panic，静默捕获并返回 false
		if r := recover(); r != nil {
			stopped = false
		}
	}()

	v := reflect.ValueOf(lru)
	if v.Kind() != reflect.Pointer || v.IsNil() {
		return false
	}

	doneField := v.Elem().FieldByName("done")
	if !doneField.IsValid() || doneField.IsNil() {
		return false
	}

	if doneField.Type() != reflect.TypeOf(make(chan struct{})) {
		return false
	}

	doneCh := *(*chan struct{})(unsafe.Pointer(doneField.UnsafeAddr())) //nolint:gosec // 有意使用 unsafe 访问内部字段
	close(doneCh)
	return true
}
