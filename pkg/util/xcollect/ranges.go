package xcollect

import (
	"slices"

	"github.com/omeyang/ipkit/pkg/util/xaddr"
)

// Ranges 把集合压平为排序后互不相交、互不相邻的最小连续区间列表：
// 每个地址贡献 [a, a]，每个子网贡献 [prefix, highest]，
// 随后合并所有重叠与相邻的区间。结果覆盖的地址集与输入完全一致。
// 对已合并的结果再次合并得到相同列表（幂等）。
func (c *Collection) Ranges() []xaddr.Range {
	out := make([]xaddr.Range, 0, len(c.addrs)+len(c.subnets))
	for _, a := range c.addrs {
		out = append(out, xaddr.RangeOf(a))
	}
	for _, s := range c.subnets {
		r, err := xaddr.NewRange(s.Prefix(), s.Highest())
		if err != nil {
			// 子网不变量保证 prefix ≤ highest，不可达
			continue
		}
		out = append(out, r)
	}
	return MergeRanges(out)
}

// MergeRanges 合并重叠与相邻的区间，返回按序的最小不相交划分。
// 输入切片会被原地重排。
//
// 算法：按 (To 升序, From 升序) 排序后自最高区间向下扫描；
// 相邻两项中较低区间上界的封顶后继（不回绕）达到或越过较高区间
// 下界时合并为一项，并以扩张后的区间与新邻居重新测试。
func MergeRanges(rs []xaddr.Range) []xaddr.Range {
	if len(rs) <= 1 {
		return rs
	}
	slices.SortFunc(rs, func(a, b xaddr.Range) int {
		if v := a.To().Compare(b.To()); v != 0 {
			return v
		}
		return a.From().Compare(b.From())
	})

	i := len(rs) - 2
	for i >= 0 {
		lower, upper := rs[i], rs[i+1]
		if nextCapped(lower.To()).Compare(upper.From()) < 0 {
			// 真实间隙，保留两个区间
			i--
			continue
		}
		from := lower.From()
		if upper.From().Compare(from) < 0 {
			from = upper.From()
		}
		to := upper.To()
		if lower.To().Compare(to) > 0 {
			to = lower.To()
		}
		merged, err := xaddr.NewRange(from, to)
		if err != nil {
			i--
			continue
		}
		rs[i] = merged
		rs = append(rs[:i+1], rs[i+2:]...)
		// 扩张后的区间需要与它的新邻居重新测试
		if i > len(rs)-2 {
			i = len(rs) - 2
		}
	}
	return rs
}

// nextCapped 返回 a 的封顶后继：版本最大地址的后继是其自身，不回绕。
// 仅用于合并扫描，环语义的后继见 [xaddr.Address.Next]。
func nextCapped(a xaddr.Address) xaddr.Address {
	if a.Raw() == a.Raw().HighestHost(0) {
		return a
	}
	return a.Next()
}
