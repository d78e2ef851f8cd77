// Package xwire 提供与标准库 net/netip 生态的互操作与 IP 区间序列化。
//
// # 核心功能
//
//   - 类型互转: [ToNetip]/[FromNetip]、[ToPrefix]/[FromPrefix]、
//     [ToIPRange]/[FromIPRange]
//   - 高效查询: [IPSetOf] 把集合的合并覆盖导出为 [*netipx.IPSet]
//   - 序列化: [WireRange] 以 {start, end} 形式承载区间的 JSON/YAML 表示
//
// # 设计决策
//
//   - 本包是 xaddr 与 netip 之间唯一的桥接点，xaddr 自身不依赖 netip，
//     核心类型保持零依赖
//   - IPv4-mapped IPv6 不做 Unmap，转换保持字面值
//   - 带 zone ID 的地址被拒绝，本库不建模链路本地作用域
package xwire
