package config

import (
	"fmt"
	"os"

	"github.com/decker502/mergebox/pkg/embedded"
)

// readConfigData 读取配置文件内容
// 优先从嵌入资源读取，不存在时回退到文件系统（便于 -config 参数指定外部文件）
func readConfigData(path string) ([]byte, error) {
	if embedded.Exists(path) {
		data, err := embedded.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read embedded config %s: %w", path, err)
		}
		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return data, nil
}
