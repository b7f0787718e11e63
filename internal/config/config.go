// Package config 加载用户自定义的后缀到语言的映射文件。
//
// 文件格式为 TOML，每个顶层键是语言名称，值是包含 extensions 数组的表：
//
//	[Zig]
//	extensions = ["zig", "zon"]
package config

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// ErrNotFound 表示配置文件不存在。
var ErrNotFound = errors.New("config file not found")

// Mappings 是后缀（小写、不带点号）到自定义语言名称的映射。
type Mappings map[string]string

// languageTable 对应配置文件中的一个语言表。
type languageTable struct {
	Extensions *[]string `toml:"extensions"`
}

// Load 读取并解析配置文件。path 为空时返回空映射。
func Load(path string) (Mappings, error) {
	mappings := Mappings{}
	if strings.TrimSpace(path) == "" {
		return mappings, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return mappings, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	parsed, err := Parse(content)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return parsed, nil
}

// Parse 解析 TOML 文档。
// 同一个后缀出现在多个语言中时，按语言名称排序后最后一个生效。
func Parse(content []byte) (Mappings, error) {
	var document map[string]languageTable
	if err := toml.Unmarshal(content, &document); err != nil {
		return nil, fmt.Errorf("parse toml: %w", err)
	}

	names := make([]string, 0, len(document))
	for name := range document {
		names = append(names, name)
	}
	sort.Strings(names)

	mappings := Mappings{}
	for _, name := range names {
		table := document[name]
		if table.Extensions == nil {
			return nil, fmt.Errorf("language %q: missing extensions field", name)
		}
		for _, ext := range *table.Extensions {
			normalized := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
			if normalized == "" {
				return nil, fmt.Errorf("language %q: empty extension", name)
			}
			mappings[normalized] = name
		}
	}

	return mappings, nil
}
