package config

import (
	"encoding/base64"
	"os"

	"github.com/pkg/errors"
	yaml "gopkg.in/yaml.v2"
)

// Load 从YAML文件加载配置
// 功能：读取文件并在默认配置基础上做严格反序列化
// 参数：path-配置文件路径
// 返回：合并后的配置与可能的错误
// 说明：未出现在文件中的字段保持Default()给出的默认值
func Load(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "read config file %s", path)
	}
	return parse(b)
}

// Decode 从base64编码的YAML数据加载配置
// 参数：data-base64编码的YAML文本
func Decode(data string) (Config, error) {
	b, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return Config{}, errors.Wrap(err, "decode base64 config data")
	}
	return parse(b)
}

func parse(b []byte) (Config, error) {
	c := Default()
	if err := yaml.UnmarshalStrict(b, &c); err != nil {
		return Config{}, errors.Wrap(err, "parse config yaml")
	}
	return c, nil
}
