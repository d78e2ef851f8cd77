// Package xcollect 提供地址/子网的聚合集合与连续区间合并引擎。
//
// [Collection] 按单一 IP 版本聚合三类桶：接受的地址、接受的子网、
// 校验失败的原文 token。集合可以从显式值增长，也可以用
// [Collection.IngestText] 在自由文本中扫描地址形 token。
// [Collection.Ranges] 把全部成员压平并合并为排序后互不相交、
// 互不相邻的最小连续区间列表，是整个库的算法核心。
//
// # 核心功能
//
//   - collection.go: [Collection] 三桶聚合，Contains / Overlaps
//     命中查询（返回命中的成员而非布尔值）
//   - ingest.go: 保守的按分隔符分词、IPv6 行首冒号缩进容错重试
//   - ranges.go: [MergeRanges] 区间合并扫描
//     （(To, From) 双键排序 + 自高向下封顶后继相邻性合并）
//
// # 快速示例
//
//	c, _ := xcollect.New(xaddr.V4)
//	c.IngestText("blocked: 10.0.0.5 and 10.0.0.1/33x")
//	fmt.Println(len(c.Addresses()))  // 1（10.0.0.5）
//	fmt.Println(c.Rejected())        // [10.0.0.1/33x]
//
//	c.IngestText("10.0.0.6 10.0.0.7/32")
//	for _, r := range c.Ranges() {
//	    fmt.Println(r)               // 10.0.0.5-10.0.0.7（相邻区间已合并）
//	}
//
// # 设计决策
//
//   - 合并扫描使用封顶后继（版本最大地址不回绕），与 xaddr 环语义的
//     Next/Prev 刻意分离：[10.0.0.0, 255.255.255.255] 永远不会
//     与 [0.0.0.0, x] 合并
//   - 合并满足幂等性、相邻合并性与间隙保持性，
//     由表驱动测试和模糊测试共同验证
//   - 查询返回第一个命中的成员（先地址桶后子网桶），
//     调用方可据此报告命中了哪条记录
package xcollect
