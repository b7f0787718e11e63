// Package model 定义 locsum 的核心数据模型。
// 这些结构会被扫描器、输出层和命令层共同使用。
package model

// LineMetrics 表示一个文件（或一组文件）的行级统计值。
//
// 注意：
// - Total 表示物理行数（每行计 1，末尾换行不额外计行）
// - Blank 表示去掉首尾空白后为空的行
// - Comment 表示以 // 或 # 开头的非空行
// - Counted 是按当前策略最终计入的行数，汇总表只使用该字段
type LineMetrics struct {
	Total   int64 `json:"total"`
	Blank   int64 `json:"blank"`
	Comment int64 `json:"comment"`
	Counted int64 `json:"counted"`
}

// Add 将另一个统计结果叠加到当前对象。
func (m *LineMetrics) Add(other LineMetrics) {
	m.Total += other.Total
	m.Blank += other.Blank
	m.Comment += other.Comment
	m.Counted += other.Counted
}

// LanguageMetrics 表示某个语言的聚合结果，对应汇总表中的一行。
type LanguageMetrics struct {
	Language   string      `json:"language"`
	Extensions []string    `json:"extensions"`
	Files      int64       `json:"files"`
	Lines      int64       `json:"lines"`
	Metrics    LineMetrics `json:"metrics"`
}

// SkippedFile 记录无法按文本读取而被跳过的文件。
// 跳过不阻断全量扫描，也不会出现在任何语言的汇总中。
type SkippedFile struct {
	Path   string `json:"path"`
	Reason string `json:"reason"`
}

// TotalMetrics 表示项目级总计信息。
type TotalMetrics struct {
	Files int64 `json:"files"`
	LineMetrics
}

// ScanResult 是一次扫描的完整输出模型。
type ScanResult struct {
	ScannedPath string            `json:"scanned_path"`
	Languages   []LanguageMetrics `json:"languages"`
	Total       TotalMetrics      `json:"total"`
	Skipped     []SkippedFile     `json:"skipped"`
}
