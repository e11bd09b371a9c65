package providers

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"msd/internal/structures"
)

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	filename := filepath.Base(flags.ConfigPath)
	viper.AddConfigPath(filepath.Dir(flags.ConfigPath))
	viper.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
	viper.SetConfigType("yaml")

	viper.BindEnv("logger.level", "MSD_LOG_LEVEL")
	viper.BindEnv("storage.driver", "MSD_STORAGE_DRIVER")
	viper.BindEnv("storage.dir", "MSD_STORAGE_DIR")
	viper.BindEnv("meeting.cacheTTL", "MSD_CACHE_TTL")
	viper.BindEnv("persistence.saveInterval", "MSD_SAVE_INTERVAL")
	viper.BindEnv("cache.enabled", "MSD_CACHE_ENABLED")
	viper.BindEnv("cache.size", "MSD_CACHE_SIZE")

	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}

	err = viper.Unmarshal(&conf)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	cnfValidator := NewCnfValidator(&conf)
	err = cnfValidator.Validate()
	if err != nil {
		return nil, err
	}

	conf.AppName = "MeetingSessionDaemon"
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode

	return &conf, nil
}
