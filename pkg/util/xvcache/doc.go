// Package xvcache 提供 IP 字面量校验结果的记忆化缓存。
//
// 校验（xverify.Verify）是纯函数：同样的输入、策略和选项必然得到
// 同样的结果。对于反复出现相同字面量的热路径（日志扫描、请求过滤），
// xvcache 把结果缓存在带 TTL 的 LRU 中以省去重复解析。
//
// # 核心功能
//
//   - [Cache.Verify]/[Cache.VerifyWith]：与 xverify 同签名的记忆化校验
//   - [Cache.Stats]：原子命中/未命中计数
//   - [Cache.Close]：释放底层清理 goroutine，关闭后退化为直接计算
//
// # 设计决策
//
//   - 基于 github.com/hashicorp/golang-lru/v2/expirable，缓存键为
//     (输入, 策略, 选项) 三元组，选项是 comparable 值类型
//   - 结果本身永不失效，TTL 仅用于限制长尾键的内存占用
//   - 未缓存键的并发请求可能重复计算，不做 singleflight：
//     单次校验代价远小于同步开销
package xvcache
