package model

import (
	"sort"
)

// Aggregate 按语言展示名称累加行数。
// 展示名称相同的语言（无论来自内置表还是自定义映射）合并为同一行。
type Aggregate struct {
	byLanguage map[string]*languageEntry
}

type languageEntry struct {
	metrics    LanguageMetrics
	extensions map[string]struct{}
}

// NewAggregate 创建空的汇总表。
func NewAggregate() *Aggregate {
	return &Aggregate{byLanguage: make(map[string]*languageEntry)}
}

// Add 把一个文件的统计结果计入 language 对应的行。
// extension 仅用于记录该语言实际出现过的后缀。
func (a *Aggregate) Add(language string, extension string, metrics LineMetrics) {
	entry, ok := a.byLanguage[language]
	if !ok {
		entry = &languageEntry{
			metrics:    LanguageMetrics{Language: language},
			extensions: make(map[string]struct{}),
		}
		a.byLanguage[language] = entry
	}

	entry.metrics.Files++
	entry.metrics.Lines += metrics.Counted
	entry.metrics.Metrics.Add(metrics)
	entry.extensions[extension] = struct{}{}
}

// Len 返回当前语言行数。
func (a *Aggregate) Len() int {
	return len(a.byLanguage)
}

// Rows 返回按语言名称升序排列的汇总行。
func (a *Aggregate) Rows() []LanguageMetrics {
	rows := make([]LanguageMetrics, 0, len(a.byLanguage))
	for _, entry := range a.byLanguage {
		row := entry.metrics
		row.Extensions = make([]string, 0, len(entry.extensions))
		for ext := range entry.extensions {
			row.Extensions = append(row.Extensions, ext)
		}
		sort.Strings(row.Extensions)
		rows = append(rows, row)
	}

	sort.Slice(rows, func(i int, j int) bool {
		return rows[i].Language < rows[j].Language
	})
	return rows
}

// Total 返回全部语言的总计。
func (a *Aggregate) Total() TotalMetrics {
	var total TotalMetrics
	for _, entry := range a.byLanguage {
		total.Files += entry.metrics.Files
		total.LineMetrics.Add(entry.metrics.Metrics)
	}
	return total
}
