// ipgrep 从文本中提取、校验并聚合 IP 地址。
//
// 用法:
//
//	ipgrep <命令> [命令选项] [参数]
//
// 命令:
//
//	scan [文件...]    从文件（或 stdin）提取 IP 字面量并聚合为区间
//	  -4, --ipv4      只提取 IPv4
//	  -6, --ipv6      只提取 IPv6
//	  -j, --json      以 JSON 输出合并区间
//	check <地址>      检查地址是否命中黑名单
//	  -c, --config    黑名单配置文件 (yaml/json)
//	fmt <字面量>      规范化单个地址或 CIDR
//	  -f, --full      完全展开形式（IPv6 全 8 组、无 :: 压缩）
//	  -u, --upper     十六进制大写
//	help              显示帮助信息
//
// 退出码:
//
//	0: 成功（check 命令: 地址命中黑名单）
//	1: scan 未提取到任何字面量 / check 未命中 / fmt 输入无效
//	2: 参数错误（未知命令、缺少必需参数等）
//
// 示例:
//
//	ipgrep scan access.log                    # 提取两个地址族
//	ipgrep scan -4 --json access.log          # 只提取 IPv4，JSON 输出
//	cat access.log | ipgrep scan -6           # 从 stdin 提取 IPv6
//	ipgrep check -c blocklist.yaml 10.0.0.5   # 黑名单查询
//	ipgrep fmt 2001:DB8:0:0:0:0:0:1/64        # => 2001:db8::/64
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"
)

// 版本信息（可通过 -ldflags 注入，例如:
//
//	go build -ldflags "-X main.Version=1.0.0 -X main.GitCommit=$(git rev-parse --short HEAD) -X main.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
//
// ）。
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

func main() {
	os.Exit(run())
}

// createApp 创建 CLI 应用。
func createApp() *cli.Command {
	return &cli.Command{
		Name:    "ipgrep",
		Usage:   "IP 地址提取、校验与聚合工具",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildTime),
		Commands: []*cli.Command{
			createScanCommand(),
			createCheckCommand(),
			createFmtCommand(),
		},
		DefaultCommand: "help",
		Authors: []any{
			"ipkit Team",
		},
		// 设计决策: 禁止 urfave/cli 直接调用 os.Exit，
		// 由 run() 统一处理退出码映射，确保与文档退出码契约一致。
		ExitErrHandler: func(_ context.Context, _ *cli.Command, err error) {
			if _, ok := err.(cli.ExitCoder); ok {
				fmt.Fprintln(os.Stderr, err)
			}
		},
	}
}

func run() int {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	app := createApp()
	if err := app.Run(context.Background(), os.Args); err != nil {
		var exitErr *exitError
		if errors.As(err, &exitErr) {
			return exitErr.code
		}
		var usageErr *usageError
		if errors.As(err, &usageErr) {
			fmt.Fprintf(os.Stderr, "参数错误: %v\n", usageErr)
			return 2
		}
		// CLI 框架产生的参数错误（如未知 flag、未知命令）也返回退出码 2，
		// 与文档契约"参数错误 → 退出码 2"保持一致。
		if _, ok := err.(cli.ExitCoder); ok {
			return 2
		}
		if isCLIUsageError(err) {
			fmt.Fprintln(os.Stderr, err)
			return 2
		}
		fmt.Fprintf(os.Stderr, "错误: %v\n", err)
		return 1
	}
	return 0
}
