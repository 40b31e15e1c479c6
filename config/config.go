package config

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	ConfigDataPath                  = "data-path"
	ConfigDefaultLexicon            = "default-lexicon"
	ConfigDefaultLetterDistribution = "default-letter-distribution"
	ConfigClockMs                   = "clock-ms"
	ConfigGridWidth                 = "grid-width"
	ConfigGridHeight                = "grid-height"
	ConfigSeed                      = "seed"
	ConfigLogLevel                  = "log-level"
	ConfigDebug                     = "debug"
	ConfigAutoplayGames             = "autoplay-games"
	ConfigAutoplayThreads           = "autoplay-threads"
	ConfigAutoplayMaxTicks          = "autoplay-max-ticks"
	ConfigAutoplayTickMs            = "autoplay-tick-ms"
	ConfigAutoplayLogfile           = "autoplay-logfile"
	ConfigAutoplaySeedfile          = "autoplay-seedfile"
	ConfigAutoplayStatusAddr        = "autoplay-status-addr"
	ConfigFile                      = "config"
)

// Config wraps a viper instance. Values come, in decreasing priority, from
// command-line flags, GOLDEN_* environment variables, an optional YAML
// config file, and the defaults below.
type Config struct {
	*viper.Viper
	args []string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(ConfigDataPath, "")
	v.SetDefault(ConfigDefaultLexicon, "french")
	v.SetDefault(ConfigDefaultLetterDistribution, "french")
	v.SetDefault(ConfigClockMs, 10000)
	v.SetDefault(ConfigGridWidth, 8)
	v.SetDefault(ConfigGridHeight, 8)
	v.SetDefault(ConfigSeed, 0)
	v.SetDefault(ConfigLogLevel, "info")
	v.SetDefault(ConfigDebug, false)
	v.SetDefault(ConfigAutoplayGames, 100)
	v.SetDefault(ConfigAutoplayThreads, 4)
	v.SetDefault(ConfigAutoplayMaxTicks, 5000)
	v.SetDefault(ConfigAutoplayTickMs, 250)
	v.SetDefault(ConfigAutoplayLogfile, "")
	v.SetDefault(ConfigAutoplaySeedfile, "")
	v.SetDefault(ConfigAutoplayStatusAddr, "")
}

// DefaultConfig returns a config with every key at its default value.
// It reads neither flags nor the environment, so it is what tests use.
func DefaultConfig() *Config {
	v := viper.New()
	setDefaults(v)
	return &Config{Viper: v}
}

func (c *Config) Load(args []string) error {
	c.Viper = viper.New()
	setDefaults(c.Viper)

	fs := pflag.NewFlagSet("golden", pflag.ContinueOnError)
	// Flags stop at the first argument, which may start a command with
	// options of its own.
	fs.SetInterspersed(false)
	fs.String(ConfigDataPath, "", "directory holding letterdistributions/ and lexica/; embedded data is used if empty")
	fs.String(ConfigDefaultLexicon, "french", "the default lexicon to use")
	fs.String(ConfigDefaultLetterDistribution, "french", "the default letter distribution to use")
	fs.Uint32(ConfigClockMs, 10000, "milliseconds between two triplets")
	fs.Uint8(ConfigGridWidth, 8, "grid width")
	fs.Uint8(ConfigGridHeight, 8, "grid height")
	fs.Uint32(ConfigSeed, 0, "game seed; 0 picks a random one")
	fs.String(ConfigLogLevel, "info", "log level (debug, info, warn, error)")
	fs.Bool(ConfigDebug, false, "shortcut for --log-level debug")
	fs.Int(ConfigAutoplayGames, 100, "number of games to autoplay")
	fs.Int(ConfigAutoplayThreads, 4, "number of autoplay threads")
	fs.Int(ConfigAutoplayMaxTicks, 5000, "maximum ticks per autoplayed game")
	fs.Uint32(ConfigAutoplayTickMs, 250, "milliseconds per autoplay tick")
	fs.String(ConfigAutoplayLogfile, "", "file receiving one YAML record per autoplayed game")
	fs.String(ConfigAutoplaySeedfile, "", "file listing the seeds to autoplay, one per line")
	fs.String(ConfigAutoplayStatusAddr, "", "address serving autoplay progress over HTTP, e.g. :8088")
	fs.String(ConfigFile, "", "optional YAML config file")

	if err := fs.Parse(args); err != nil {
		return err
	}
	c.args = fs.Args()
	if err := c.BindPFlags(fs); err != nil {
		return err
	}
	c.SetEnvPrefix("GOLDEN")
	c.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.AutomaticEnv()

	if f := c.GetString(ConfigFile); f != "" {
		c.SetConfigFile(f)
		c.SetConfigType("yaml")
		if err := c.ReadInConfig(); err != nil {
			return err
		}
	}
	return nil
}

// Args returns the command-line arguments left over after the flags.
func (c *Config) Args() []string {
	return c.args
}

func (c *Config) DataPath() string {
	return c.GetString(ConfigDataPath)
}

// SanitizedSettings returns the settings worth logging at startup.
func (c *Config) SanitizedSettings() map[string]any {
	return map[string]any{
		ConfigDataPath:                  c.GetString(ConfigDataPath),
		ConfigDefaultLexicon:            c.GetString(ConfigDefaultLexicon),
		ConfigDefaultLetterDistribution: c.GetString(ConfigDefaultLetterDistribution),
		ConfigClockMs:                   c.GetUint32(ConfigClockMs),
		ConfigGridWidth:                 c.GetUint(ConfigGridWidth),
		ConfigGridHeight:                c.GetUint(ConfigGridHeight),
		ConfigSeed:                      c.GetUint32(ConfigSeed),
		ConfigLogLevel:                  c.GetString(ConfigLogLevel),
	}
}
