package config

import "sync"

// ConfigManager owns the loaded configuration for the lifetime of a command.
// ConfigManager 在命令生命周期内持有已加载的配置。
type ConfigManager struct {
	configPath string
	mutex      sync.RWMutex
	config     *Config
}

// NewConfigManager creates a new configuration manager instance
// NewConfigManager 创建新的配置管理器实例
func NewConfigManager(configPath string) *ConfigManager {
	if configPath == "" {
		configPath = DefaultConfigPath
	}
	return &ConfigManager{configPath: configPath}
}

// Path returns the file the manager reads from.
func (cm *ConfigManager) Path() string { return cm.configPath }

// LoadConfig loads the configuration from the specified path
// LoadConfig 从指定路径加载配置
func (cm *ConfigManager) LoadConfig() error {
	cm.mutex.Lock()
	defer cm.mutex.Unlock()

	config, err := Load(cm.configPath)
	if err != nil {
		return err
	}
	cm.config = config
	return nil
}

// SaveConfig saves the current configuration to the specified path
// SaveConfig 将当前配置保存到指定路径
func (cm *ConfigManager) SaveConfig() error {
	cm.mutex.RLock()
	defer cm.mutex.RUnlock()

	if cm.config == nil {
		return nil
	}
	return Save(cm.configPath, cm.config)
}

// GetConfig returns a copy of the current configuration, or the defaults
// when nothing has been loaded yet.
// GetConfig 返回当前配置的副本
func (cm *ConfigManager) GetConfig() *Config {
	cm.mutex.RLock()
	defer cm.mutex.RUnlock()

	if cm.config == nil {
		return DefaultConfig()
	}
	cfgCopy := *cm.config
	return &cfgCopy
}

// UpdateConfig replaces the current configuration
// UpdateConfig 更新当前配置
func (cm *ConfigManager) UpdateConfig(newConfig *Config) {
	cm.mutex.Lock()
	defer cm.mutex.Unlock()

	cm.config = newConfig
}
