// Package xaddr 提供定宽二进制 IP 地址核心。
//
// xaddr 把地址表示为带版本标签的定长 16 位字序列（[Raw]：IPv4 用 2 个字，
// 每字打包两个八位段；IPv6 用 8 个字，每字一个十六位段），在其上实现
// 环形加减、前缀掩码、区间最高地址、规范文本渲染和全序比较，
// 并以不可变值类型 [Address]、[Subnet]、[Range] 对外暴露。
//
// # 核心功能
//
//   - version.go: 版本标签 [Version]（V4/V6）及位宽、字数查询
//   - raw.go: [Raw] 字表示、严格解析（[ParseRaw]）、环形 Next/Prev、
//     Mask/HighestHost、规范渲染（含 IPv6 "::" 零段压缩）、全序比较
//   - address.go: [Address] 值类型，版本查询、相邻地址导航、子网派生
//   - subnet.go: [Subnet]，构造即规范化（主机位清零），前缀与最高地址
//     构造时物化，含 Contains/Overlaps 与惰性遍历 [Subnet.All]
//   - range.go: [Range] 闭合连续区间
//
// # 快速示例
//
// 解析与渲染：
//
//	a, _ := xaddr.ParseAddress("2001:db8:0:0:0:0:0:1", xaddr.V6)
//	fmt.Println(a)                  // 2001:db8::1
//	fmt.Println(a.Expanded(false))  // 2001:db8:0:0:0:0:0:1
//
// 子网派生与包含判断：
//
//	a, _ := xaddr.ParseAddress("192.168.1.77", xaddr.V4)
//	s, _ := a.Subnet(24)
//	fmt.Println(s)                        // 192.168.1.0/24
//	fmt.Println(s.Contains(a))            // true
//	fmt.Println(s.Highest())              // 192.168.1.255
//
// # 设计决策
//
//   - 字数不变量（2 或 8）由版本标签 + 定长数组在类型层面保证，
//     不做运行时长度检查
//   - 所有类型构造后不可变，变换返回新值；[Raw] 与 [Address] 可比较、
//     可作 map key，比较零分配
//   - [Raw.Next] / [Raw.Prev] 按环语义回绕（全一地址的后继为全零地址）；
//     范围合并场景需要的封顶后继由调用方（xcollect）自行实现，
//     两种语义刻意分离
//   - 严格解析：IPv4 拒绝带冗余前导零的八位段（"00"、"01"），
//     IPv6 拒绝多于一个 "::" 或展开后不足/超过 8 段的输入；
//     不支持 IPv4-mapped IPv6 等嵌入写法
//   - 全序先比版本标签（IPv4 < IPv6），再按字典序比较字序列，
//     跨版本值永不相等
//
// # 错误处理
//
// 预定义错误变量支持 errors.Is 判断：
//
//	_, err := xaddr.ParseAddress("300.1.1.1", xaddr.V4)
//	if errors.Is(err, xaddr.ErrRange) {
//	    // 数值越界
//	}
package xaddr
