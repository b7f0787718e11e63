// Package report 提供 locsum 的输出能力。
// 当前实现支持 Markdown 风格的管道表格和 JSON 格式（含文件导出）。
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"locsum/internal/model"
)

const (
	languageHeader = "Languages"
	linesHeader    = "Lines"
	padding        = 2
)

// PrintTable 以两列表格展示汇总结果，rows 需已按语言名称排序。
//
//	| Languages | Lines |
//	|-----------|-------|
//	| Python    | 2     |
func PrintTable(writer io.Writer, rows []model.LanguageMetrics) error {
	nameWidth := len(languageHeader)
	linesWidth := len(linesHeader)

	for _, row := range rows {
		if width := len(row.Language); width > nameWidth {
			nameWidth = width
		}
		if width := LinesWidth(row.Lines); width > linesWidth {
			linesWidth = width
		}
	}

	var builder strings.Builder
	builder.WriteString("\n")
	writeRow(&builder, languageHeader, nameWidth, linesHeader, linesWidth)
	builder.WriteString("|" + strings.Repeat("-", nameWidth+padding))
	builder.WriteString("|" + strings.Repeat("-", linesWidth+padding) + "|\n")
	for _, row := range rows {
		writeRow(&builder, row.Language, nameWidth, strconv.FormatInt(row.Lines, 10), linesWidth)
	}
	builder.WriteString("\n")

	if _, err := io.WriteString(writer, builder.String()); err != nil {
		return fmt.Errorf("write table: %w", err)
	}
	return nil
}

func writeRow(builder *strings.Builder, name string, nameWidth int, lines string, linesWidth int) {
	builder.WriteString("| " + name + pad(name, nameWidth))
	builder.WriteString(" | " + lines + pad(lines, linesWidth) + " |\n")
}

// pad 返回补齐到 width 所需的空格，按字节长度计算，超宽时不截断。
func pad(cell string, width int) string {
	if len(cell) >= width {
		return ""
	}
	return strings.Repeat(" ", width-len(cell))
}

// LinesWidth 按 ceil(log10(total+1)) 估算行数列宽度，以单精度浮点计算。
// 该公式在 10 的整数次幂附近可能比实际位数少 1，输出格式保持这一行为。
func LinesWidth(total int64) int {
	value := float32(total + 1)
	return int(math.Ceil(float64(float32(math.Log10(float64(value))))))
}

// PrintJSON 把扫描结果按易读 JSON 输出到任意 writer。
func PrintJSON(writer io.Writer, result model.ScanResult) error {
	content, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if _, err := writer.Write(content); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	return nil
}

// WriteJSONFile 将 JSON 结果导出到指定路径。
// 如果目录不存在会自动创建。
func WriteJSONFile(path string, result model.ScanResult) error {
	content, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	directory := filepath.Dir(path)
	if directory != "." && directory != "" {
		if mkErr := os.MkdirAll(directory, 0o755); mkErr != nil {
			return fmt.Errorf("create output directory: %w", mkErr)
		}
	}

	if writeErr := os.WriteFile(path, content, 0o644); writeErr != nil {
		return fmt.Errorf("write output file: %w", writeErr)
	}
	return nil
}
