// Package config loads the text2num command configuration.
package config

// Modes lists the values accepted for Config.Mode.
var Modes = []string{ModeReplace, ModeParse, ModeFind, ModeSpell}

const (
	ModeReplace = "replace"
	ModeParse   = "parse"
	ModeFind    = "find"
	ModeSpell   = "spell"
)

// Config is the root command configuration.
type Config struct {
	Lang        string    `yaml:"lang"         env:"TEXT2NUM_LANG"      env-default:"en"`
	LexiconPath string    `yaml:"lexicon_path" env:"TEXT2NUM_LEXICON"`
	Mode        string    `yaml:"mode"         env:"TEXT2NUM_MODE"      env-default:"replace"`
	Threshold   float64   `yaml:"threshold"    env:"TEXT2NUM_THRESHOLD" env-default:"10"`
	Workers     int       `yaml:"workers"      env:"TEXT2NUM_WORKERS"   env-default:"4"`
	Log         LogConfig `yaml:"log"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}
