// Package languages 提供后缀到语言的分类能力。
// 内置表只读，自定义映射由 Classifier 在内置表未命中时查询。
package languages

import (
	"sort"
	"strings"
)

// LanguageDescriptor 用于对外展示语言及后缀信息。
type LanguageDescriptor struct {
	Name       string
	Extensions []string
	Custom     bool
}

// builtinGroups 是内置的语言与后缀清单（后缀小写、不带点号）。
var builtinGroups = []LanguageDescriptor{
	{Name: "C", Extensions: []string{"c", "h"}},
	{Name: "C++", Extensions: []string{"cpp", "hpp", "tcc", "cxx", "hxx"}},
	{Name: "C#", Extensions: []string{"cs"}},
	{Name: "F#", Extensions: []string{"fs"}},
	{Name: "Rust", Extensions: []string{"rs"}},
	{Name: "Python", Extensions: []string{"py"}},
	{Name: "JavaScript", Extensions: []string{"js"}},
	{Name: "TypeScript", Extensions: []string{"ts"}},
	{Name: "HTML", Extensions: []string{"html", "htm"}},
	{Name: "CSS", Extensions: []string{"css"}},
	{Name: "Sass", Extensions: []string{"sass"}},
	{Name: "Razor page", Extensions: []string{"cshtml"}},
	{Name: "Java", Extensions: []string{"java"}},
	{Name: "Swift", Extensions: []string{"swift"}},
	{Name: "JSON", Extensions: []string{"json"}},
	{Name: "XML", Extensions: []string{"xml"}},
	{Name: "INI", Extensions: []string{"ini"}},
	{Name: "TOML", Extensions: []string{"toml"}},
	{Name: "YAML", Extensions: []string{"yaml", "yml"}},
	{Name: "Visual Studio Solution", Extensions: []string{"sln"}},
	{Name: "C# Project", Extensions: []string{"csproj"}},
	{Name: "Text", Extensions: []string{"txt"}},
	{Name: "Markdown", Extensions: []string{"md"}},
	{Name: ".gitignore", Extensions: []string{"gitignore"}},
	{Name: "GLSL", Extensions: []string{"glsl", "vert", "frag", "tesc", "tese", "geom", "comp"}},
	{Name: "HLSL", Extensions: []string{"hlsl", "fx"}},
	{Name: "WebGPU Shading Language", Extensions: []string{"wgsl"}},
	{Name: "Metal Shading Language", Extensions: []string{"msl"}},
	{Name: "CG", Extensions: []string{"cg"}},
	{Name: "Powershell Script", Extensions: []string{"ps1"}},
	{Name: "Batch File", Extensions: []string{"bat"}},
	{Name: "CMD Script", Extensions: []string{"cmd"}},
	{Name: "Bash Script", Extensions: []string{"sh"}},
	{Name: "Assembly", Extensions: []string{"asm"}},
}

// Registry 管理内置语言与后缀映射。
type Registry struct {
	groups     []LanguageDescriptor
	languageOf map[string]Language
}

// NewRegistry 创建并注册所有内置语言。
func NewRegistry() *Registry {
	registry := &Registry{
		groups:     builtinGroups,
		languageOf: make(map[string]Language),
	}

	for _, group := range registry.groups {
		for _, ext := range group.Extensions {
			registry.languageOf[strings.ToLower(ext)] = Known(group.Name)
		}
	}

	return registry
}

// Lookup 按后缀（不带点号，大小写不敏感）查询内置语言。
// 未命中时返回以小写后缀为标签的 Unknown。
func (r *Registry) Lookup(ext string) Language {
	normalized := strings.ToLower(ext)
	if language, ok := r.languageOf[normalized]; ok {
		return language
	}
	return Unknown(normalized)
}

// Languages 返回内置语言清单，按名称排序。
func (r *Registry) Languages() []LanguageDescriptor {
	result := make([]LanguageDescriptor, 0, len(r.groups))
	for _, group := range r.groups {
		extensions := append([]string(nil), group.Extensions...)
		sort.Strings(extensions)
		result = append(result, LanguageDescriptor{
			Name:       group.Name,
			Extensions: extensions,
		})
	}

	sort.Slice(result, func(i int, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// ExtensionsForLanguage 返回指定内置语言对应的全部后缀。
func (r *Registry) ExtensionsForLanguage(language string) []string {
	for _, group := range r.groups {
		if group.Name == language {
			extensions := append([]string(nil), group.Extensions...)
			sort.Strings(extensions)
			return extensions
		}
	}
	return nil
}
