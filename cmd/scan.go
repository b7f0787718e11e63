package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"locsum/internal/config"
	"locsum/internal/languages"
	"locsum/internal/linecount"
	"locsum/internal/report"
	"locsum/internal/scanner"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// scanOptions 存放扫描命令的可配置参数。
type scanOptions struct {
	ignoreDirs      []string
	countComments   bool
	countWhitespace bool
	countUnknown    bool
	configPath      string
	format          string
	output          string
	logLevel        string
}

// addScanFlags 在根命令上注册扫描相关 flag。
// 示例：
//
//	locsum .
//	locsum ./project -i vendor -i node_modules --count-comments
//	locsum ./project --config languages.toml --format json --output result.json
func addScanFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringArrayP("ignore-dir", "i", nil, "按名称跳过的目录，可重复指定")
	flags.Bool("count-comments", false, "计入以 // 或 # 开头的注释行")
	flags.Bool("count-whitespace", false, "计入空白行")
	flags.Bool("count-unknown", false, "计入内置表与自定义映射都无法识别的后缀")
	flags.String("format", "table", "输出格式: table 或 json")
	flags.String("output", "", "json 导出文件路径，为空时不导出")
}

// loadScanOptions 从 viper 中读取最终生效的参数。
// ignore-dir 显式指定时直接取 flag 原值，避免目录名中的逗号被拆分。
func loadScanOptions(cmd *cobra.Command, settings *viper.Viper) (scanOptions, error) {
	options := scanOptions{
		ignoreDirs:      settings.GetStringSlice("ignore-dir"),
		countComments:   settings.GetBool("count-comments"),
		countWhitespace: settings.GetBool("count-whitespace"),
		countUnknown:    settings.GetBool("count-unknown"),
		configPath:      strings.TrimSpace(settings.GetString("config")),
		format:          strings.ToLower(strings.TrimSpace(settings.GetString("format"))),
		output:          strings.TrimSpace(settings.GetString("output")),
		logLevel:        settings.GetString("log-level"),
	}

	if cmd.Flags().Changed("ignore-dir") {
		ignoreDirs, err := cmd.Flags().GetStringArray("ignore-dir")
		if err != nil {
			return options, err
		}
		options.ignoreDirs = ignoreDirs
	}

	if options.format != "table" && options.format != "json" {
		return options, errors.New("unsupported format, allowed values: table, json")
	}
	return options, nil
}

// runScan 执行一次完整扫描并输出结果。
func runScan(cmd *cobra.Command, registry *languages.Registry, directory string) error {
	settings, err := newSettings(cmd)
	if err != nil {
		return err
	}

	options, err := loadScanOptions(cmd, settings)
	if err != nil {
		return err
	}

	logger, err := newLogger(options.logLevel, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	classifier, err := loadClassifier(registry, options.configPath, options.countUnknown, logger)
	if err != nil {
		return err
	}

	// json 模式下进度行写往 stderr，保证 stdout 是合法 JSON。
	var progress io.Writer = cmd.OutOrStdout()
	if options.format == "json" {
		progress = cmd.ErrOrStderr()
	}

	service := scanner.NewService(classifier, scanner.Options{
		IgnoreDirs: options.ignoreDirs,
		Policy: linecount.Policy{
			CountComments:   options.countComments,
			CountWhitespace: options.countWhitespace,
		},
	}, progress, logger)

	result, err := service.ScanPath(directory)
	if err != nil {
		return err
	}
	if len(result.Skipped) > 0 {
		logger.Info("skipped files that are not text", "count", len(result.Skipped))
	}

	switch options.format {
	case "table":
		return report.PrintTable(cmd.OutOrStdout(), result.Languages)
	case "json":
		if err := report.PrintJSON(cmd.OutOrStdout(), result); err != nil {
			return err
		}
		if options.output == "" {
			return nil
		}
		if err := report.WriteJSONFile(options.output, result); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "\nJSON exported to %s\n", options.output)
		return nil
	default:
		return errors.New("unsupported format")
	}
}

// loadClassifier 读取自定义映射并创建分类器。
// 配置文件不存在时只记录警告，其余配置错误直接返回。
func loadClassifier(registry *languages.Registry, configPath string, countUnknown bool, logger *slog.Logger) (*languages.Classifier, error) {
	mappings, err := config.Load(configPath)
	if err != nil {
		if !errors.Is(err, config.ErrNotFound) {
			return nil, err
		}
		logger.Warn("config file not found, using built-in mappings only", "path", configPath)
	}

	classifier := languages.NewClassifier(registry, mappings, countUnknown)
	for _, ext := range classifier.ShadowedExtensions() {
		logger.Warn("custom mapping ignored, extension is built in",
			"extension", ext,
			"custom", mappings[ext],
			"builtin", registry.Lookup(ext).String(),
		)
	}
	return classifier, nil
}
