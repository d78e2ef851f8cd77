package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/ipkit/internal/blockconf"
	"github.com/omeyang/ipkit/pkg/util/xaddr"
	"github.com/omeyang/ipkit/pkg/util/xcollect"
	"github.com/omeyang/ipkit/pkg/util/xverify"
	"github.com/omeyang/ipkit/pkg/util/xwire"
)

// exitError 表示需要非零退出码但已完成输出的场景。
// 命令内部已完成所有输出，main 只需设置退出码。
type exitError struct {
	code int
}

func (e *exitError) Error() string { return "" }

// usageError 表示参数错误，run() 映射为退出码 2。
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

// isCLIUsageError 识别 urfave/cli 框架自身产生的参数解析错误。
// 这类错误没有统一的类型，只能按消息文本匹配。
func isCLIUsageError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "flag provided but not defined") ||
		strings.Contains(msg, "flag needs an argument") ||
		strings.Contains(msg, "No help topic for")
}

// createScanCommand 创建 scan 子命令。
func createScanCommand() *cli.Command {
	return &cli.Command{
		Name:      "scan",
		Aliases:   []string{"s"},
		Usage:     "从文本提取 IP 字面量并聚合为区间",
		ArgsUsage: "[文件...]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "ipv4",
				Aliases: []string{"4"},
				Usage:   "只提取 IPv4",
			},
			&cli.BoolFlag{
				Name:    "ipv6",
				Aliases: []string{"6"},
				Usage:   "只提取 IPv6",
			},
			&cli.BoolFlag{
				Name:    "json",
				Aliases: []string{"j"},
				Usage:   "以 JSON 输出合并区间",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			versions, err := scanVersions(cmd.Bool("ipv4"), cmd.Bool("ipv6"))
			if err != nil {
				return err
			}
			text, err := readInputs(cmd.Args().Slice())
			if err != nil {
				return err
			}
			return cmdScan(os.Stdout, text, versions, cmd.Bool("json"))
		},
	}
}

// createCheckCommand 创建 check 子命令。
func createCheckCommand() *cli.Command {
	return &cli.Command{
		Name:      "check",
		Aliases:   []string{"c"},
		Usage:     "检查地址是否命中黑名单",
		ArgsUsage: "<地址或 CIDR>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "黑名单配置文件 (yaml/json)",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			path := cmd.String("config")
			if path == "" {
				return &usageError{msg: "check 需要 --config 参数"}
			}
			if cmd.Args().Len() != 1 {
				return &usageError{msg: "check 需要一个地址参数"}
			}
			blocklist, err := blockconf.Load(path)
			if err != nil {
				return fmt.Errorf("加载黑名单: %w", err)
			}
			return cmdCheck(os.Stdout, blocklist, cmd.Args().First())
		},
	}
}

// createFmtCommand 创建 fmt 子命令。
func createFmtCommand() *cli.Command {
	return &cli.Command{
		Name:      "fmt",
		Aliases:   []string{"f"},
		Usage:     "规范化单个地址或 CIDR",
		ArgsUsage: "<字面量>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "full",
				Aliases: []string{"f"},
				Usage:   "完全展开形式（IPv6 全 8 组、无 :: 压缩）",
			},
			&cli.BoolFlag{
				Name:    "upper",
				Aliases: []string{"u"},
				Usage:   "十六进制大写",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return &usageError{msg: "fmt 需要一个字面量参数"}
			}
			return cmdFmt(os.Stdout, cmd.Args().First(), cmd.Bool("full"), cmd.Bool("upper"))
		},
	}
}

// scanVersions 解析 -4/-6 标志为要提取的地址族列表。
// 两个标志都不给时提取两个地址族。
func scanVersions(only4, only6 bool) ([]xaddr.Version, error) {
	switch {
	case only4 && only6:
		return nil, &usageError{msg: "-4 与 -6 不能同时指定"}
	case only4:
		return []xaddr.Version{xaddr.V4}, nil
	case only6:
		return []xaddr.Version{xaddr.V6}, nil
	default:
		return []xaddr.Version{xaddr.V4, xaddr.V6}, nil
	}
}

// readInputs 读取所有输入文件的内容，无参数时读 stdin。
func readInputs(paths []string) (string, error) {
	if len(paths) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("读取 stdin: %w", err)
		}
		return string(data), nil
	}

	var sb strings.Builder
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("读取文件: %w", err)
		}
		sb.Write(data)
		sb.WriteByte('\n')
	}
	return sb.String(), nil
}

// scanReport 是 scan --json 的单地址族输出结构。
type scanReport struct {
	Addresses []string          `json:"addresses,omitempty"`
	Subnets   []string          `json:"subnets,omitempty"`
	Ranges    []xwire.WireRange `json:"ranges,omitempty"`
	Rejected  []string          `json:"rejected,omitempty"`
}

// cmdScan 提取文本中的 IP 字面量并输出聚合结果。
// 一个字面量都没提取到时返回退出码 1。
func cmdScan(w io.Writer, text string, versions []xaddr.Version, jsonOut bool) error {
	accepted := 0
	report := make(map[string]scanReport, len(versions))

	for _, ver := range versions {
		c, err := xcollect.New(ver)
		if err != nil {
			return err
		}
		c.IngestText(text)

		addrs, subs := c.Addresses(), c.Subnets()
		accepted += len(addrs) + len(subs)
		if rejected := c.Rejected(); len(rejected) > 0 {
			slog.Warn("存在无法解析的候选 token",
				slog.String("version", ver.String()),
				slog.Int("count", len(rejected)))
		}

		r := scanReport{
			Ranges:   xwire.WireRangesOf(c),
			Rejected: c.Rejected(),
		}
		for _, a := range addrs {
			r.Addresses = append(r.Addresses, a.String())
		}
		for _, s := range subs {
			r.Subnets = append(r.Subnets, s.String())
		}
		report[strings.ToLower(ver.String())] = r
	}

	if jsonOut {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return err
		}
	} else {
		for _, ver := range versions {
			name := strings.ToLower(ver.String())
			printReport(w, name, report[name])
		}
	}

	if accepted == 0 {
		return &exitError{code: 1}
	}
	return nil
}

func printReport(w io.Writer, name string, r scanReport) {
	fmt.Fprintf(w, "%s:\n", name)
	fmt.Fprintf(w, "  addresses: %s\n", strings.Join(r.Addresses, ", "))
	fmt.Fprintf(w, "  subnets:   %s\n", strings.Join(r.Subnets, ", "))
	ranges := make([]string, 0, len(r.Ranges))
	for _, wr := range r.Ranges {
		ranges = append(ranges, wr.Start+"-"+wr.End)
	}
	fmt.Fprintf(w, "  ranges:    %s\n", strings.Join(ranges, ", "))
	fmt.Fprintf(w, "  rejected:  %s\n", strings.Join(r.Rejected, ", "))
}

// cmdCheck 检查地址（或 CIDR）是否命中黑名单。
// 命中输出匹配的黑名单成员并返回 nil（退出码 0），未命中返回退出码 1。
func cmdCheck(w io.Writer, blocklist *xcollect.Collection, arg string) error {
	ver := blocklist.Version()

	if strings.Contains(arg, "/") {
		sub, err := xverify.ParseSubnet(arg, ver)
		if err != nil {
			return &usageError{msg: fmt.Sprintf("无效的 CIDR %q (%s)", arg, ver)}
		}
		if member, ok := blocklist.Overlaps(sub); ok {
			fmt.Fprintf(w, "matched: %s\n", member)
			return nil
		}
		fmt.Fprintln(w, "no match")
		return &exitError{code: 1}
	}

	addr, err := xverify.ParseAddress(arg, ver)
	if err != nil {
		return &usageError{msg: fmt.Sprintf("无效的地址 %q (%s)", arg, ver)}
	}
	if member, ok := blocklist.Contains(addr); ok {
		fmt.Fprintf(w, "matched: %s\n", member)
		return nil
	}
	fmt.Fprintln(w, "no match")
	return &exitError{code: 1}
}

// cmdFmt 规范化单个地址或 CIDR 字面量。
// 无效输入输出错误信息并返回退出码 1。
func cmdFmt(w io.Writer, literal string, full, upper bool) error {
	var (
		out string
		err error
	)
	if full {
		out, err = xverify.Sanitize(literal, upper)
	} else {
		out, err = xverify.Prettify(literal, upper)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "无效的字面量: %q\n", literal)
		return &exitError{code: 1}
	}
	fmt.Fprintln(w, out)
	return nil
}
