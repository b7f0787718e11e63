package languages

import "fmt"

// Kind 区分内置语言与未知类别。
type Kind int

const (
	// KindKnown 表示内置表中的语言。
	KindKnown Kind = iota
	// KindUnknown 表示内置表之外的后缀，Label 可能是后缀本身、自定义名称或占位名称。
	KindUnknown
)

// Language 是单个文件的分类结果。
// 相等性与排序都以 String() 的展示文本为准。
type Language struct {
	Kind  Kind
	Label string
}

// Known 构造内置语言。
func Known(name string) Language {
	return Language{Kind: KindKnown, Label: name}
}

// Unknown 构造未知类别。
func Unknown(label string) Language {
	return Language{Kind: KindUnknown, Label: label}
}

// UnknownPlaceholder 返回未配置映射的后缀在 --count-unknown 下使用的名称。
func UnknownPlaceholder(ext string) Language {
	return Unknown(fmt.Sprintf("Unknown (.%s)", ext))
}

// IsUnknown 判断是否为未知类别。
func (l Language) IsUnknown() bool {
	return l.Kind == KindUnknown
}

func (l Language) String() string {
	return l.Label
}
