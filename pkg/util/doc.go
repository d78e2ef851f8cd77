// Package util 提供 IP 地址处理相关的子包。
//
// 子包列表：
//   - xaddr: IP 地址核心类型，定宽 16 位字表示、解析、渲染、序关系、子网与区间
//   - xverify: 字面量校验与规范化引擎，CIDR 策略、纠正渲染、预设校验器
//   - xcollect: 地址收集与聚合，自由文本提取、区间合并、成员查询
//   - xwire: net/netip 与 go4.org/netipx 互操作、区间序列化
//   - xvcache: 校验结果的记忆化缓存，LRU + TTL
//
// 设计原则：
//   - xaddr 为零依赖核心，IPv4/IPv6 共用一套字级算法
//   - 校验失败用布尔值表达，错误保留给构造类 API
//   - 与 netip 生态的耦合收敛在 xwire 单个子包内
package util
