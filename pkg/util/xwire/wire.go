package xwire

import (
	"fmt"

	"github.com/omeyang/ipkit/pkg/util/xaddr"
	"github.com/omeyang/ipkit/pkg/util/xcollect"
	"github.com/omeyang/ipkit/pkg/util/xverify"
)

// WireRange 是 IP 区间的序列化格式。
// 使用 JSON/YAML 标签 {"start":"...","end":"..."}，
// 地址以规范小写形式渲染。
type WireRange struct {
	Start string `json:"start" yaml:"start"`
	End   string `json:"end" yaml:"end"`
}

// WireRangeFrom 从区间创建 WireRange。
// 区间零值（未经 NewRange 构造）返回 ErrInvalidRange。
func WireRangeFrom(r xaddr.Range) (WireRange, error) {
	if !r.From().Valid() || !r.To().Valid() {
		return WireRange{}, fmt.Errorf("%w: zero Range", ErrInvalidRange)
	}
	return WireRange{
		Start: r.From().String(),
		End:   r.To().String(),
	}, nil
}

// WireRangesOf 把集合的合并区间列表导出为 WireRange 切片。
// 空集合返回 nil。
func WireRangesOf(c *xcollect.Collection) []WireRange {
	ranges := c.Ranges()
	if len(ranges) == 0 {
		return nil
	}
	out := make([]WireRange, 0, len(ranges))
	for _, r := range ranges {
		w, err := WireRangeFrom(r)
		if err != nil {
			// Ranges 只产出合法区间，不可达
			continue
		}
		out = append(out, w)
	}
	return out
}

// ToRange 将 WireRange 解析回区间。
// ver 为 V0 时先试 IPv4 再试 IPv6；两端版本不同或 Start > End 返回错误。
func (w WireRange) ToRange(ver xaddr.Version) (xaddr.Range, error) {
	from, err := xverify.ParseAddress(w.Start, ver)
	if err != nil {
		return xaddr.Range{}, fmt.Errorf("%w: start %q", ErrInvalidAddress, w.Start)
	}
	to, err := xverify.ParseAddress(w.End, ver)
	if err != nil {
		return xaddr.Range{}, fmt.Errorf("%w: end %q", ErrInvalidAddress, w.End)
	}
	r, err := xaddr.NewRange(from, to)
	if err != nil {
		return xaddr.Range{}, fmt.Errorf("%w: %s-%s", ErrInvalidRange, w.Start, w.End)
	}
	return r, nil
}
