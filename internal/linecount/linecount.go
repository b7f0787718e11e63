// Package linecount 按策略统计文本行数。
// 注释判定只看行首的 // 或 #，不理解块注释和各语言的注释语法。
package linecount

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"locsum/internal/model"
)

// ErrNotText 表示文件内容不是合法的 UTF-8 文本。
var ErrNotText = errors.New("file is not valid UTF-8 text")

// Policy 控制空白行与注释行是否计入。
type Policy struct {
	CountComments   bool
	CountWhitespace bool
}

// Count 统计 text 中满足策略的行数。
// 按 \n 切分，末尾换行不产生额外的空行，\r 会随首尾空白一起去掉。
func Count(text string, policy Policy) model.LineMetrics {
	var metrics model.LineMetrics

	for line := range strings.Lines(text) {
		classifyLine(&metrics, strings.TrimSpace(line), policy)
	}

	return metrics
}

// classifyLine 根据去除首尾空白后的行内容更新统计值。
func classifyLine(metrics *model.LineMetrics, trimmed string, policy Policy) {
	metrics.Total++

	if trimmed == "" {
		metrics.Blank++
		if policy.CountWhitespace {
			metrics.Counted++
		}
		return
	}

	if isComment(trimmed) {
		metrics.Comment++
		if policy.CountComments {
			metrics.Counted++
		}
		return
	}

	metrics.Counted++
}

func isComment(trimmed string) bool {
	return strings.HasPrefix(trimmed, "//") || strings.HasPrefix(trimmed, "#")
}

// CountFile 读取整个文件并统计。
// 文件无法读取或不是 UTF-8 文本时返回错误，调用方据此跳过该文件。
func CountFile(path string, policy Policy) (model.LineMetrics, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return model.LineMetrics{}, fmt.Errorf("read file: %w", err)
	}
	if !utf8.Valid(content) {
		return model.LineMetrics{}, ErrNotText
	}
	return Count(string(content), policy), nil
}
