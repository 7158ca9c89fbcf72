package base

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/half-nothing/airport-booking/internal/interfaces/config"
	"github.com/half-nothing/airport-booking/internal/interfaces/global"
	"github.com/half-nothing/airport-booking/internal/interfaces/log"
	"github.com/half-nothing/airport-booking/internal/utils"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

func isYaml(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

func decodeConfig(path string, data []byte, cfg *config.Config) error {
	if isYaml(path) {
		return yaml.Unmarshal(data, cfg)
	}
	return json.Unmarshal(data, cfg)
}

func encodeConfig(path string, cfg *config.Config) ([]byte, error) {
	if isYaml(path) {
		return yaml.Marshal(cfg)
	}
	return json.MarshalIndent(cfg, "", "\t")
}

// applyEnvOverrides lets secrets live outside the config file
func applyEnvOverrides(logger log.LoggerInterface, cfg *config.Config) {
	overrides := []struct {
		name   string
		target *string
	}{
		{global.EnvDatabasePassword, &cfg.Database.Password},
		{global.EnvJwtSecret, &cfg.Server.HttpServer.JWT.Secret},
		{global.EnvStoreAccessKey, &cfg.Server.HttpServer.Store.AccessKey},
		{global.EnvRedisPassword, &cfg.Server.Redis.Password},
		{global.EnvEmailPassword, &cfg.Server.HttpServer.Email.Password},
	}
	for _, override := range overrides {
		if value, ok := os.LookupEnv(override.name); ok && override.target != nil {
			logger.DebugF("Config value overridden by environment variable %s", override.name)
			*override.target = value
		}
	}
}

func loadEnvFile(logger log.LoggerInterface, path string) {
	if path == "" {
		return
	}
	if err := godotenv.Load(path); err != nil {
		if !os.IsNotExist(err) {
			logger.WarnF("Fail to load env file %s: %v", path, err)
		}
		return
	}
	logger.InfoF("Loaded environment variables from %s", path)
}

func readConfig(logger log.LoggerInterface, path string) (*config.Config, *config.ValidResult) {
	cfg := config.DefaultConfig()

	bytes, err := os.ReadFile(path)
	if err != nil {
		if err := saveConfig(path, cfg); err != nil {
			return nil, config.ValidFailWith(errors.New("fail to save configuration file while creating configuration file"), err)
		}
		return nil, config.ValidFail(errors.New("the configuration file does not exist and has been created. Please try again after editing the configuration file"))
	}
	if err := decodeConfig(path, bytes, cfg); err != nil {
		return nil, config.ValidFailWith(errors.New("the configuration file could not be parsed"), err)
	}
	if cfg.Database == nil || cfg.Server == nil || cfg.Server.HttpServer == nil || cfg.Server.HttpServer.JWT == nil ||
		cfg.Server.HttpServer.Store == nil || cfg.Server.HttpServer.Email == nil || cfg.Server.Redis == nil {
		return nil, config.ValidFail(errors.New("the configuration file is missing required sections"))
	}
	applyEnvOverrides(logger, cfg)
	if result := cfg.CheckValid(logger); result.IsFail() {
		return nil, result
	}
	return cfg, config.ValidPass()
}

func saveConfig(path string, cfg *config.Config) error {
	data, err := encodeConfig(path, cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, global.DefaultFilePermissions)
}

type Manager struct {
	path   string
	config *utils.CachedValue[config.Config]
	logger log.LoggerInterface
}

func NewManager(logger log.LoggerInterface) *Manager {
	return NewManagerWithPath(logger, *global.ConfigFilePath, *global.EnvFilePath)
}

func NewManagerWithPath(logger log.LoggerInterface, path string, envFile string) *Manager {
	loadEnvFile(logger, envFile)
	manager := &Manager{
		path:   path,
		logger: logger,
	}
	manager.config = utils.NewCachedValue(0, manager.getConfig)
	return manager
}

func (manager *Manager) getConfig() *config.Config {
	cfg, result := readConfig(manager.logger, manager.path)
	if result.IsFail() {
		manager.logger.FatalF("%v", result.Error())
		if result.OriginErr() != nil {
			manager.logger.FatalF("Caused by: %v", result.OriginErr())
		}
		panic(result.Cause())
	}
	return cfg
}

// Load reads and validates the configuration without panicking
func (manager *Manager) Load() (*config.Config, error) {
	cfg, result := readConfig(manager.logger, manager.path)
	if result.IsFail() {
		if result.OriginErr() != nil {
			return nil, errors.Join(result.Error(), result.OriginErr())
		}
		return nil, result.Error()
	}
	return cfg, nil
}

func (manager *Manager) Config() *config.Config {
	return manager.config.GetValue()
}

func (manager *Manager) SaveConfig() error {
	return saveConfig(manager.path, manager.Config())
}
