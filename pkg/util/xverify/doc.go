// Package xverify 提供 IP 地址与 CIDR 字面量的校验和规范化引擎。
//
// 核心入口 [Verify] 以单一算法承载全部校验：拆分尾部 "/位长" 后缀、
// 按请求或自动探测的版本解析地址部分、校验位长范围、逐字计算网络掩码
// 并与原输入比对。合法性与规范性相互独立——主机位非零的 CIDR 是
// 合法但非规范的字面量，[Result] 同时报告两者。
// [IsIP]、[IsCIDR]、[Prettify]、[Sanitize] 等便捷入口
// 都是同一算法的薄策略预设。
//
// # 核心功能
//
//   - verify.go: [Verify] / [VerifyWith] 校验算法，[ParseAddress] /
//     [ParseSubnet] 值构造入口（子网的唯一公开构造途径）
//   - policy.go: [CIDRPolicy]（Reject/Allow/Require）、[Correction]
//     渲染模式与函数式选项
//   - presets.go: IsIP / IsIPv4 / IsIPv6 / IsCIDR / IsIPv4CIDR /
//     IsIPv6CIDR / Prettify / Sanitize 预设
//
// # 快速示例
//
// 校验并获取规范形式：
//
//	r := xverify.Verify("192.168.1.1/24", xverify.CIDRAllow)
//	fmt.Println(r.Valid)      // true
//	fmt.Println(r.Corrected)  // 192.168.1.0/24（主机位已清零）
//
//	r = xverify.Verify("192.168.1.0/24", xverify.CIDRAllow)
//	fmt.Println(r.Corrected)  // ""（输入已规范）
//
// 格式化：
//
//	s, _ := xverify.Prettify("2001:0db8:0:0:0:0:0:1", false)
//	fmt.Println(s)  // 2001:db8::1
//	s, _ = xverify.Sanitize("2001:db8::1", false)
//	fmt.Println(s)  // 2001:db8:0:0:0:0:0:1
//
// # 设计决策
//
//   - 所有公开校验入口把解析/越界错误折叠为 Result{false, ""}，
//     调用方用布尔值分支，不做异常处理
//   - 未强制版本时固定先试 IPv4 再试 IPv6，预设入口不得改变该顺序
//   - 位长字面量除 "0" 外拒绝前导零，保证合法输入的渲染恒等于自身
//   - [Options] 是可比较值类型，上层缓存（xvcache）直接以其为键
package xverify
