// Package blockconf 加载 ipgrep 的黑名单配置文件。
//
// 配置结构（YAML 或 JSON，按扩展名识别）：
//
//	version: ipv4          # 或 ipv6
//	entries:
//	  - 192.168.1.7
//	  - 10.0.0.0/8
//
// 条目经 xverify 解析后装入 xcollect.Collection，
// 无法解析的条目视为配置错误而非静默跳过。
package blockconf

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"github.com/omeyang/ipkit/pkg/util/xaddr"
	"github.com/omeyang/ipkit/pkg/util/xcollect"
	"github.com/omeyang/ipkit/pkg/util/xverify"
)

// Format 是配置文件格式。
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

var (
	// ErrInvalidConfig 表示黑名单配置无效。
	ErrInvalidConfig = errors.New("blockconf: invalid config")

	// ErrUnsupportedFormat 表示不支持的配置格式。
	ErrUnsupportedFormat = errors.New("blockconf: unsupported config format")
)

// Blocklist 是黑名单配置的反序列化目标。
type Blocklist struct {
	Version string   `koanf:"version"`
	Entries []string `koanf:"entries"`
}

// Load 从文件加载黑名单并构建集合。
// 格式按扩展名识别（.yaml/.yml 或 .json）。
func Load(path string) (*xcollect.Collection, error) {
	format, err := detectFormat(path)
	if err != nil {
		return nil, err
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), parserFor(format)); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return build(k)
}

// LoadBytes 从字节数据加载黑名单并构建集合，
// 格式需显式指定。适用于测试和非文件来源。
func LoadBytes(data []byte, format Format) (*xcollect.Collection, error) {
	parser := parserFor(format)
	if parser == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(data), parser); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return build(k)
}

// build 反序列化并逐条解析黑名单条目。
func build(k *koanf.Koanf) (*xcollect.Collection, error) {
	var bl Blocklist
	if err := k.Unmarshal("", &bl); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	var ver xaddr.Version
	switch strings.ToLower(bl.Version) {
	case "ipv4", "v4", "4":
		ver = xaddr.V4
	case "ipv6", "v6", "6":
		ver = xaddr.V6
	default:
		return nil, fmt.Errorf("%w: version %q", ErrInvalidConfig, bl.Version)
	}

	c, err := xcollect.New(ver)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	for _, entry := range bl.Entries {
		if strings.Contains(entry, "/") {
			sub, err := xverify.ParseSubnet(entry, ver)
			if err != nil {
				return nil, fmt.Errorf("%w: entry %q: %w", ErrInvalidConfig, entry, err)
			}
			if err := c.AddSubnet(sub); err != nil {
				return nil, fmt.Errorf("%w: entry %q: %w", ErrInvalidConfig, entry, err)
			}
			continue
		}
		addr, err := xverify.ParseAddress(entry, ver)
		if err != nil {
			return nil, fmt.Errorf("%w: entry %q: %w", ErrInvalidConfig, entry, err)
		}
		if err := c.Add(addr); err != nil {
			return nil, fmt.Errorf("%w: entry %q: %w", ErrInvalidConfig, entry, err)
		}
	}
	return c, nil
}

func detectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: unknown extension %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

func parserFor(format Format) koanf.Parser {
	switch format {
	case FormatYAML:
		return yaml.Parser()
	case FormatJSON:
		return json.Parser()
	default:
		return nil
	}
}
