package config

import (
	"fmt"
	"log"
	"sync"

	"github.com/spf13/viper"

	"schedsim/internal/core"
)

type SchedulerConfig struct {
	Port                                     int
	LogLevel                                 string
	LogJSON                                  bool
	Cores                                    int
	RoundRobinTimeQuantum                    int
	MultilevelFeedbackQueueLevelsTimeQuantum []int
}

var once sync.Once
var config *SchedulerConfig

// GetSchedulerConfig loads config.yaml from the working directory once and
// returns the same instance afterwards. A missing file falls back to the
// defaults; a malformed one is fatal.
func GetSchedulerConfig() *SchedulerConfig {
	once.Do(func() {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath("./")

		viper.SetDefault("port", 9095)
		viper.SetDefault("log.level", "info")
		viper.SetDefault("log.json", false)
		viper.SetDefault("scheduler.cores", 4)
		viper.SetDefault("scheduler.round_robin.time_quantum", 2)
		viper.SetDefault("scheduler.multilevel_feedback_queue.levels_time_quantum", []int{2, 4, 8})

		if err := viper.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				log.Fatalln(err)
			}
		}

		config = &SchedulerConfig{}
		config.Port = viper.GetInt("port")
		config.LogLevel = viper.GetString("log.level")
		config.LogJSON = viper.GetBool("log.json")
		config.Cores = viper.GetInt("scheduler.cores")
		config.RoundRobinTimeQuantum = viper.GetInt("scheduler.round_robin.time_quantum")
		config.MultilevelFeedbackQueueLevelsTimeQuantum = viper.GetIntSlice("scheduler.multilevel_feedback_queue.levels_time_quantum")
	})

	return config
}

// Validate reports configuration values no scheduler can be built from.
func (c *SchedulerConfig) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range", c.Port)
	}
	if c.Cores < core.MinCores || c.Cores > core.MaxCores {
		return fmt.Errorf("scheduler.cores %d out of range, want %d..%d", c.Cores, core.MinCores, core.MaxCores)
	}
	if c.RoundRobinTimeQuantum <= 0 {
		return fmt.Errorf("scheduler.round_robin.time_quantum %d is not positive", c.RoundRobinTimeQuantum)
	}
	if len(c.MultilevelFeedbackQueueLevelsTimeQuantum) == 0 {
		return fmt.Errorf("scheduler.multilevel_feedback_queue.levels_time_quantum is empty")
	}
	for i, quantum := range c.MultilevelFeedbackQueueLevelsTimeQuantum {
		if quantum <= 0 {
			return fmt.Errorf("scheduler.multilevel_feedback_queue.levels_time_quantum[%d] %d is not positive", i, quantum)
		}
	}
	return nil
}
