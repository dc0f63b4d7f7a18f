// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"io/ioutil"

	tml "github.com/BurntSushi/toml"
)

// Config 模块的toml配置
type Config struct {
	Title      string      `toml:"title,omitempty"`
	CoinSymbol string      `toml:"coinSymbol,omitempty"`
	Log        *LogConfig  `toml:"log,omitempty"`
	Exec       *ExecConfig `toml:"exec,omitempty"`
}

// LogConfig 日志配置
type LogConfig struct {
	Loglevel        string `toml:"loglevel,omitempty"`
	LogConsoleLevel string `toml:"logConsoleLevel,omitempty"`
	//日志文件名，可带目录，所有生成的日志文件都放到此目录下
	LogFile string `toml:"logFile,omitempty"`
	//单个日志文件的最大值（单位：兆）
	MaxFileSize uint32 `toml:"maxFileSize,omitempty"`
	//最多保存的历史日志文件个数
	MaxBackups uint32 `toml:"maxBackups,omitempty"`
	//最多保存的历史日志消息（单位：天）
	MaxAge uint32 `toml:"maxAge,omitempty"`
	//日志文件名是否使用本地事件（否则使用UTC时间）
	LocalTime bool `toml:"localTime,omitempty"`
	//历史日志文件是否压缩（压缩格式为gz）
	Compress bool `toml:"compress,omitempty"`
	//是否打印调用源文件和行号
	CallerFile bool `toml:"callerFile,omitempty"`
	//是否打印调用方法
	CallerFunction bool `toml:"callerFunction,omitempty"`
}

// ExecConfig 执行器相关配置
type ExecConfig struct {
	//状态数据库的driver: leveldb/memdb
	Driver string `toml:"driver,omitempty"`
	//数据库文件目录
	DbPath string `toml:"dbPath,omitempty"`
	//数据库缓存大小
	DbCache int32 `toml:"dbCache,omitempty"`
}

// GetCoinSymbol 获取主币符号，默认bty
func (c *Config) GetCoinSymbol() string {
	if c == nil || c.CoinSymbol == "" {
		return DefaultCoinSymbol
	}
	return c.CoinSymbol
}

// DefaultCoinSymbol 默认主币
const DefaultCoinSymbol = "bty"

// InitCfg 初始化配置
func InitCfg(path string) *Config {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		panic(err)
	}
	return InitCfgString(string(data))
}

// InitCfgString 初始化配置
func InitCfgString(cfgstring string) *Config {
	var cfg Config
	if _, err := tml.Decode(cfgstring, &cfg); err != nil {
		panic(err)
	}
	return &cfg
}

// ConfigKey 原始的config合约key
func ConfigKey(key string) string {
	return "mavl-config-" + key
}

// ManageKey manage合约的配置key
func ManageKey(key string) string {
	return "mavl-manage-" + key
}
