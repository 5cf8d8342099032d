package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/viper"

	"github.com/ugaemi/graphfight-server/internal/game"
)

// EnvPrefix is prepended to every environment override, e.g. GRAPHFIGHT_GAME_TEAMS.
const EnvPrefix = "GRAPHFIGHT"

type Config struct {
	Port      int          `mapstructure:"port"`
	LogLevel  string       `mapstructure:"log_level"`
	LogFormat string       `mapstructure:"log_format"`
	Game      game.Options `mapstructure:"game"`
}

var (
	validLogLevels  = []string{"debug", "info", "warn", "error"}
	validLogFormats = []string{"text", "json"}
)

func Default() *Config {
	return &Config{
		Port:      8080,
		LogLevel:  "info",
		LogFormat: "text",
		Game:      game.DefaultOptions(),
	}
}

// SetDefaults registers every key on v so env overrides and Unmarshal see them.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("port", d.Port)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("log_format", d.LogFormat)

	v.SetDefault("game.half_width", d.Game.HalfWidth)
	v.SetDefault("game.half_height", d.Game.HalfHeight)
	v.SetDefault("game.num_obstacles", d.Game.NumObstacles)
	v.SetDefault("game.min_obstacle_size", d.Game.MinObstacleSize)
	v.SetDefault("game.max_obstacle_size", d.Game.MaxObstacleSize)
	v.SetDefault("game.player_radius", d.Game.PlayerRadius)
	v.SetDefault("game.players_per_team", d.Game.PlayersPerTeam)
	v.SetDefault("game.teams", d.Game.Teams)
	v.SetDefault("game.seed", d.Game.Seed)
}

// Load reads defaults, then the config file (if any), then GRAPHFIGHT_*
// env vars. PORT, LOG_LEVEL and LOG_FORMAT are also honored unprefixed.
// An empty configFile searches for graphfight.yaml in the working
// directory and ignores it when absent.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range []string{"port", "log_level", "log_format"} {
		env := strings.ToUpper(key)
		if err := v.BindEnv(key, EnvPrefix+"_"+env, env); err != nil {
			return nil, err
		}
	}
	// team_sizes has no default to register, so AutomaticEnv never sees it.
	if err := v.BindEnv("game.team_sizes", EnvPrefix+"_GAME_TEAM_SIZES"); err != nil {
		return nil, err
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", configFile, err)
		}
	} else {
		v.SetConfigName("graphfight")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks server settings and the default game options together.
func (c *Config) Validate() error {
	var errs game.ValidationErrors

	if c.Port < 1 || c.Port > 65535 {
		errs = append(errs, game.ValidationError{Field: "port", Value: c.Port, Message: "must be between 1 and 65535"})
	}
	if !slices.Contains(validLogLevels, c.LogLevel) {
		errs = append(errs, game.ValidationError{Field: "log_level", Value: c.LogLevel, Message: "must be one of: " + strings.Join(validLogLevels, ", ")})
	}
	if !slices.Contains(validLogFormats, c.LogFormat) {
		errs = append(errs, game.ValidationError{Field: "log_format", Value: c.LogFormat, Message: "must be one of: " + strings.Join(validLogFormats, ", ")})
	}

	var gameErrs game.ValidationErrors
	if errors.As(c.Game.Validate(), &gameErrs) {
		for _, e := range gameErrs {
			e.Field = "game." + e.Field
			errs = append(errs, e)
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
