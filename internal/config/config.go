package config

const (
	EnvDev   = "dev"
	EnvProd  = "prod"
	EnvLocal = "local"
)

var globalConfig *Config

func Global() *Config {
	return globalConfig
}

func SetGlobal(cfg *Config) {
	globalConfig = cfg
}

type Config struct {
	Env   string      `yaml:"env" env:"ENV" env-default:"prod"`
	Tasks TasksConfig `yaml:"tasks"`
}

type TasksConfig struct {
	// File is used when a save/load prompt is answered with an empty line.
	File      string `yaml:"file" env:"TASKS_FILE" env-default:"tasks.json"`
	Autoload  bool   `yaml:"autoload" env:"TASKS_AUTOLOAD" env-default:"false"`
	Overwrite bool   `yaml:"overwrite" env:"SAVE_OVERWRITE" env-default:"true"`
}

// DefaultConfig mirrors the env-default tags for the file reader, which
// bypasses cleanenv.
func DefaultConfig() *Config {
	return &Config{
		Env: EnvProd,
		Tasks: TasksConfig{
			File:      "tasks.json",
			Autoload:  false,
			Overwrite: true,
		},
	}
}
