// Package scanner 提供目录扫描与汇总能力。
// 该层负责串联 目录遍历 → 语言分类 → 行数统计 → 汇总，全程在单个 goroutine 中顺序执行。
package scanner

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"locsum/internal/languages"
	"locsum/internal/linecount"
	"locsum/internal/model"
)

// Options 是一次扫描的可配置参数。
type Options struct {
	IgnoreDirs []string
	Policy     linecount.Policy
}

// Service 是扫描服务对象。
type Service struct {
	classifier *languages.Classifier
	options    Options
	progress   io.Writer
	logger     *slog.Logger
}

// NewService 创建扫描服务。
// progress 接收每个文件的 "Counting <path>..." 进度行，为 nil 时不输出进度。
func NewService(classifier *languages.Classifier, options Options, progress io.Writer, logger *slog.Logger) *Service {
	if progress == nil {
		progress = io.Discard
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Service{
		classifier: classifier,
		options:    options,
		progress:   progress,
		logger:     logger,
	}
}

// ScanPath 扫描目录并返回按语言汇总的结果。
// 目录不可读等错误会直接返回；单个文件无法按文本读取时只会被跳过。
func (s *Service) ScanPath(targetPath string) (model.ScanResult, error) {
	var result model.ScanResult

	trimmedPath := strings.TrimSpace(targetPath)
	if trimmedPath == "" {
		return result, errors.New("scan path is empty")
	}

	info, err := os.Stat(trimmedPath)
	if err != nil {
		return result, fmt.Errorf("stat path: %w", err)
	}
	if !info.IsDir() {
		return result, fmt.Errorf("%s is not a directory", trimmedPath)
	}

	absoluteTarget, err := filepath.Abs(trimmedPath)
	if err != nil {
		return result, fmt.Errorf("resolve absolute path: %w", err)
	}
	result.ScannedPath = absoluteTarget

	paths, err := CollectFiles(trimmedPath, s.options.IgnoreDirs)
	if err != nil {
		return result, err
	}
	s.logger.Debug("collected files", "root", trimmedPath, "files", len(paths))

	aggregate := model.NewAggregate()
	result.Skipped = make([]model.SkippedFile, 0)

	for _, path := range paths {
		language, ok := s.classifier.Classify(path)
		if !ok {
			continue
		}

		if _, err := fmt.Fprintf(s.progress, "Counting %s...\n", path); err != nil {
			return result, fmt.Errorf("write progress: %w", err)
		}

		metrics, countErr := linecount.CountFile(path, s.options.Policy)
		if countErr != nil {
			s.logger.Debug("skipping file", "path", path, "error", countErr)
			result.Skipped = append(result.Skipped, model.SkippedFile{
				Path:   path,
				Reason: countErr.Error(),
			})
			continue
		}

		ext, _ := languages.Extension(path)
		aggregate.Add(language.String(), strings.ToLower(ext), metrics)
	}

	sort.Slice(result.Skipped, func(i int, j int) bool {
		return result.Skipped[i].Path < result.Skipped[j].Path
	})

	result.Languages = aggregate.Rows()
	result.Total = aggregate.Total()
	return result, nil
}
