// Package config 基于 viper 加载客户端配置。
// 支持环境变量、可选的配置文件以及文件变更监控。
package config

import (
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// EnvPrefix 是环境变量前缀，如 HARMONIZER_API_KEY
const EnvPrefix = "HARMONIZER"

// Settings 是会话客户端需要的全部配置
type Settings struct {
	// APIKey 是远端补全接口的访问凭证
	APIKey string `mapstructure:"api_key"`
	// Model 是默认使用的模型标识
	Model string `mapstructure:"model"`
	// Debug 开启 debug 级别的诊断日志
	Debug bool `mapstructure:"debug"`
}

// Config 配置管理器
type Config struct {
	v        *viper.Viper
	value    *Settings
	mu       sync.RWMutex
	watchers []func(old, new Settings)
}

// Option 配置选项
type Option func(*Config)

// WithDefaults 设置默认值
func WithDefaults(defaults map[string]any) Option {
	return func(c *Config) {
		for k, v := range defaults {
			c.v.SetDefault(k, v)
		}
	}
}

// FromEnv 仅从环境变量加载配置，不读取配置文件
func FromEnv() (Settings, error) {
	v := viper.New()
	bindEnv(v)

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Load 加载配置文件（环境变量优先）并自动监控变更
func Load(path string, opts ...Option) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	bindEnv(v)

	c := &Config{v: v}

	for _, opt := range opts {
		opt(c)
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	var val Settings
	if err := v.Unmarshal(&val); err != nil {
		return nil, err
	}
	c.value = &val

	c.watch()
	return c, nil
}

func bindEnv(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// AutomaticEnv 不会为 Unmarshal 登记键名，需要显式绑定
	_ = v.BindEnv("api_key")
	_ = v.BindEnv("model")
	_ = v.BindEnv("debug")
}

// Get 获取当前配置（并发安全，返回拷贝）
func (c *Config) Get() Settings {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return *c.value
}

// OnChange 注册配置变更回调
func (c *Config) OnChange(callback func(old, new Settings)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.watchers = append(c.watchers, callback)
}

func (c *Config) watch() {
	var (
		debounceTimer *time.Timer
		debounceMu    sync.Mutex
	)

	c.v.OnConfigChange(func(_ fsnotify.Event) {
		debounceMu.Lock()
		if debounceTimer != nil {
			debounceTimer.Stop()
		}
		debounceTimer = time.AfterFunc(100*time.Millisecond, func() {
			c.handleConfigChange()
		})
		debounceMu.Unlock()
	})

	c.v.WatchConfig()
}

func (c *Config) handleConfigChange() {
	oldConfig := c.Get()

	newConfig, watchers, ok := c.reloadConfig()
	if !ok {
		return
	}

	if reflect.DeepEqual(oldConfig, newConfig) {
		return
	}

	for _, cb := range watchers {
		func() {
			defer func() { _ = recover() }()
			cb(oldConfig, newConfig)
		}()
	}
}

// reloadConfig 重新加载配置，返回新配置、回调列表和是否成功
func (c *Config) reloadConfig() (Settings, []func(old, new Settings), bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.v.ReadInConfig(); err != nil {
		return Settings{}, nil, false
	}

	var val Settings
	if err := c.v.Unmarshal(&val); err != nil {
		return Settings{}, nil, false
	}
	c.value = &val

	watchers := make([]func(old, new Settings), len(c.watchers))
	copy(watchers, c.watchers)

	return val, watchers, true
}
