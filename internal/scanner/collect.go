package scanner

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// CollectFiles 遍历 root 下的全部文件，返回文件路径列表。
//
// ignoredDirs 按目录名精确匹配（不是路径匹配），任意深度的同名目录及其子树都会被跳过，
// root 本身不参与匹配。遍历使用显式栈而不是递归，深层目录不会耗尽调用栈。
// 任何目录读取失败都会终止遍历并返回错误。
func CollectFiles(root string, ignoredDirs []string) ([]string, error) {
	ignored := make(map[string]struct{}, len(ignoredDirs))
	for _, name := range ignoredDirs {
		ignored[name] = struct{}{}
	}

	var files []string
	stack := []string{root}

	for len(stack) > 0 {
		dir := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, fmt.Errorf("read directory %s: %w", dir, err)
		}

		// 子目录逆序入栈，出栈时按名称顺序处理。
		var subdirs []string
		for _, entry := range entries {
			path := filepath.Join(dir, entry.Name())

			if entry.IsDir() {
				if _, skip := ignored[entry.Name()]; skip {
					continue
				}
				subdirs = append(subdirs, path)
				continue
			}

			if !isCollectable(entry.Type()) {
				continue
			}
			files = append(files, path)
		}

		for i := len(subdirs) - 1; i >= 0; i-- {
			stack = append(stack, subdirs[i])
		}
	}

	return files, nil
}

// isCollectable 只接受普通文件和符号链接，设备、管道、套接字等会被忽略。
func isCollectable(mode fs.FileMode) bool {
	return mode.IsRegular() || mode&fs.ModeSymlink != 0
}
