package clb

import (
	"os"
	"path/filepath"

	"yunion.io/x/jsonutils"
	"yunion.io/x/pkg/errors"
)

const CONFIG_FILE_NAME = "tc-clb-helper.json"

type SConfig struct {
	SecretID  string `json:"secret_id"`
	SecretKey string `json:"secret_key"`
	Region    string `json:"region"`
}

// 按优先级读取配置文件，优先级从高到低：当前目录、XDG 配置目录
func configFileCandidates() []string {
	candidates := []string{CONFIG_FILE_NAME}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".config", CONFIG_FILE_NAME))
	}
	return candidates
}

func loadConfigFile(path string) (*SConfig, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}

	body, err := jsonutils.Parse(content)
	if err != nil {
		return nil, errors.Wrapf(err, "%s is not valid JSON", path)
	}

	conf := &SConfig{}
	err = body.Unmarshal(conf)
	if err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s", path)
	}

	return conf, nil
}

// LoadConfig 返回第一个存在的配置文件内容，一个都不存在时返回 ErrNotFound
func LoadConfig() (*SConfig, error) {
	for _, path := range configFileCandidates() {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		return loadConfigFile(path)
	}
	return nil, errors.Wrapf(errors.ErrNotFound, "config file %s", CONFIG_FILE_NAME)
}
