package model

type Config struct {
	APIURL         string `yaml:"api_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	LogLevel       string `yaml:"log_level"`
	Export         struct {
		Dir        string `yaml:"dir"`
		Bucket     string `yaml:"bucket"`
		AWSProfile string `yaml:"aws_profile"`
		AWSRegion  string `yaml:"aws_region"`
	} `yaml:"export"`
}

func DefaultConfig() Config {
	config := Config{
		APIURL:         "http://localhost:8080",
		TimeoutSeconds: 10,
		LogLevel:       "info",
	}
	config.Export.Dir = "~/.config/biblio-cli/exports"
	return config
}
