package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"locsum/internal/languages"

	"github.com/spf13/cobra"
)

// newLanguageCmd 创建 language 子命令。
// 命令用于展示内置语言及后缀；指定 --config 时同时展示生效的自定义映射。
func newLanguageCmd(registry *languages.Registry) *cobra.Command {
	return &cobra.Command{
		Use:   "language",
		Short: "展示支持的语言及后缀",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := newSettings(cmd)
			if err != nil {
				return err
			}

			logger, err := newLogger(settings.GetString("log-level"), cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			classifier, err := loadClassifier(registry, strings.TrimSpace(settings.GetString("config")), false, logger)
			if err != nil {
				return err
			}

			writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

			if _, err := fmt.Fprintln(writer, "LANGUAGE\tEXTENSIONS\tSOURCE"); err != nil {
				return err
			}

			items := append(registry.Languages(), classifier.CustomLanguages()...)
			for _, item := range items {
				source := "builtin"
				if item.Custom {
					source = "config"
				}
				if _, err := fmt.Fprintf(writer, "%s\t%s\t%s\n", item.Name, strings.Join(item.Extensions, ", "), source); err != nil {
					return err
				}
			}

			return writer.Flush()
		},
	}
}
