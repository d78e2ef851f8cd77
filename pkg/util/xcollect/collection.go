package xcollect

import (
	"fmt"

	"github.com/omeyang/ipkit/pkg/util/xaddr"
)

// Member 是命中查询返回的集合成员：[xaddr.Address] 或 [*xaddr.Subnet]。
// 返回具体成员而非布尔值，便于调用方报告命中的是哪一条记录。
type Member interface {
	fmt.Stringer
}

// Collection 是单一版本的地址/子网聚合：三个相互独立的桶分别存放
// 接受的地址、接受的子网和校验失败的原文 token。
// 由 [New] 创建后通过 Add / AddSubnet / [Collection.IngestText] 增长，
// 查询不修改集合。非并发安全，多 goroutine 写入需调用方自行同步。
type Collection struct {
	version  xaddr.Version
	addrs    []xaddr.Address
	subnets  []*xaddr.Subnet
	rejected []string
}

// New 创建指定版本的空集合。
// ver 必须是 V4 或 V6，否则返回 ErrVersion。
func New(ver xaddr.Version) (*Collection, error) {
	if ver != xaddr.V4 && ver != xaddr.V6 {
		return nil, fmt.Errorf("%w: %d", ErrVersion, ver)
	}
	return &Collection{version: ver}, nil
}

// Version 返回集合的地址版本。
func (c *Collection) Version() xaddr.Version {
	return c.version
}

// Add 追加一个已校验的地址。
// 版本不一致返回 ErrVersionMismatch。
func (c *Collection) Add(addr xaddr.Address) error {
	if addr.Version() != c.version {
		return fmt.Errorf("%w: %s in %s collection", ErrVersionMismatch, addr.Version(), c.version)
	}
	c.addrs = append(c.addrs, addr)
	return nil
}

// AddSubnet 追加一个已规范化的子网。
// 版本不一致返回 ErrVersionMismatch。
func (c *Collection) AddSubnet(sub *xaddr.Subnet) error {
	if sub == nil || sub.Version() != c.version {
		return fmt.Errorf("%w: subnet in %s collection", ErrVersionMismatch, c.version)
	}
	c.subnets = append(c.subnets, sub)
	return nil
}

// Addresses 返回接受的地址桶副本。
func (c *Collection) Addresses() []xaddr.Address {
	out := make([]xaddr.Address, len(c.addrs))
	copy(out, c.addrs)
	return out
}

// Subnets 返回接受的子网桶副本。
func (c *Collection) Subnets() []*xaddr.Subnet {
	out := make([]*xaddr.Subnet, len(c.subnets))
	copy(out, c.subnets)
	return out
}

// Rejected 返回校验失败的原文 token 桶副本。
func (c *Collection) Rejected() []string {
	out := make([]string, len(c.rejected))
	copy(out, c.rejected)
	return out
}

// Contains 返回第一个覆盖 addr 的成员：先线性扫描地址桶，再扫描子网桶。
// 未命中或版本不一致返回 (nil, false)。
func (c *Collection) Contains(addr xaddr.Address) (Member, bool) {
	if addr.Version() != c.version {
		return nil, false
	}
	for _, a := range c.addrs {
		if a.Compare(addr) == 0 {
			return a, true
		}
	}
	for _, s := range c.subnets {
		if s.Contains(addr) {
			return s, true
		}
	}
	return nil, false
}

// Overlaps 返回第一个与 sub 相交的成员：先线性扫描地址桶，再扫描子网桶。
// 未命中或版本不一致返回 (nil, false)。
func (c *Collection) Overlaps(sub *xaddr.Subnet) (Member, bool) {
	if sub == nil || sub.Version() != c.version {
		return nil, false
	}
	for _, a := range c.addrs {
		if sub.Contains(a) {
			return a, true
		}
	}
	for _, s := range c.subnets {
		if s.Overlaps(sub) {
			return s, true
		}
	}
	return nil, false
}
