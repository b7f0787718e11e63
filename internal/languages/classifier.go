package languages

import (
	"path/filepath"
	"sort"
	"strings"
)

// Classifier 决定一个文件是否参与统计以及计入哪个语言。
//
// 判定顺序：
// 1. 没有后缀的文件直接排除
// 2. 内置表命中则使用内置语言
// 3. 自定义映射命中则使用自定义名称（无论 countUnknown 是否开启）
// 4. countUnknown 开启时使用 "Unknown (.ext)"
// 5. 其余情况排除
type Classifier struct {
	registry     *Registry
	custom       map[string]string
	countUnknown bool
}

// NewClassifier 创建分类器。custom 的键为小写、不带点号的后缀，值为语言名称。
// custom 在创建后只读，调用方不应再修改。
func NewClassifier(registry *Registry, custom map[string]string, countUnknown bool) *Classifier {
	if custom == nil {
		custom = map[string]string{}
	}
	return &Classifier{
		registry:     registry,
		custom:       custom,
		countUnknown: countUnknown,
	}
}

// Extension 返回路径最后一个点号之后的部分（不含点号）。
// 第二个返回值为 false 表示文件名中没有点号。
func Extension(path string) (string, bool) {
	ext := filepath.Ext(path)
	if ext == "" {
		return "", false
	}
	return strings.TrimPrefix(ext, "."), true
}

// Classify 对文件路径分类，返回 false 表示该文件不参与统计。
func (c *Classifier) Classify(path string) (Language, bool) {
	ext, ok := Extension(path)
	if !ok {
		return Language{}, false
	}
	return c.ClassifyExtension(ext)
}

// ClassifyExtension 对单个后缀分类，语义同 Classify。
func (c *Classifier) ClassifyExtension(ext string) (Language, bool) {
	language := c.registry.Lookup(ext)
	if !language.IsUnknown() {
		return language, true
	}

	if name, ok := c.custom[language.Label]; ok {
		return Unknown(name), true
	}
	if c.countUnknown {
		return UnknownPlaceholder(language.Label), true
	}
	return Language{}, false
}

// CustomLanguages 返回生效的自定义语言清单，按名称排序。
// 已被内置表占用的后缀不会出现在结果中。
func (c *Classifier) CustomLanguages() []LanguageDescriptor {
	byName := make(map[string][]string)
	for ext, name := range c.custom {
		if !c.registry.Lookup(ext).IsUnknown() {
			continue
		}
		byName[name] = append(byName[name], ext)
	}

	result := make([]LanguageDescriptor, 0, len(byName))
	for name, extensions := range byName {
		sort.Strings(extensions)
		result = append(result, LanguageDescriptor{
			Name:       name,
			Extensions: extensions,
			Custom:     true,
		})
	}

	sort.Slice(result, func(i int, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result
}

// ShadowedExtensions 返回自定义映射中被内置表覆盖、因而不会生效的后缀。
func (c *Classifier) ShadowedExtensions() []string {
	var shadowed []string
	for ext := range c.custom {
		if !c.registry.Lookup(ext).IsUnknown() {
			shadowed = append(shadowed, ext)
		}
	}
	sort.Strings(shadowed)
	return shadowed
}
