// Package cmd 提供 locsum 的命令行入口与子命令编排。
package cmd

import (
	"strings"

	"locsum/internal/languages"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// envPrefix 是环境变量前缀，例如 LOCSUM_COUNT_COMMENTS=true。
const envPrefix = "LOCSUM"

// Execute 组装根命令并执行。
// version 参数由 main 包注入，便于在 CI/CD 中打包不同版本。
func Execute(version string) error {
	registry := languages.NewRegistry()
	rootCmd := newRootCmd(version, registry)
	return rootCmd.Execute()
}

// newRootCmd 创建根命令并注册全部子命令。
// 根命令本身即扫描命令：locsum <directory>。
func newRootCmd(version string, registry *languages.Registry) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "locsum <directory>",
		Short: "按语言统计目录中的代码行数",
		Long: "locsum 递归遍历目录，按文件后缀识别语言，\n" +
			"统计每种语言的行数（可选择是否计入空白行与注释行）并输出汇总表。",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd, registry, args[0])
		},
	}

	rootCmd.PersistentFlags().String("config", "", "自定义语言映射文件（TOML）")
	rootCmd.PersistentFlags().String("log-level", "warn", "日志级别: debug, info, warn, error")
	addScanFlags(rootCmd)

	rootCmd.AddCommand(newVersionCmd(version))
	rootCmd.AddCommand(newLanguageCmd(registry))

	return rootCmd
}

// newSettings 把命令的全部 flag 绑定到独立的 viper 实例，并允许通过环境变量覆盖默认值。
// 优先级：显式 flag > 环境变量 > flag 默认值。
func newSettings(cmd *cobra.Command) (*viper.Viper, error) {
	settings := viper.New()
	settings.SetEnvPrefix(envPrefix)
	settings.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	settings.AutomaticEnv()

	if err := settings.BindPFlags(cmd.Flags()); err != nil {
		return nil, err
	}
	return settings, nil
}
