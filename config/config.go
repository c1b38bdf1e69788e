package config

type Configuration struct {
	App       App             `mapstructure:"APP" json:"app" yaml:"app"`
	Auth      Auth            `mapstructure:"AUTH" json:"auth" yaml:"auth"`
	Redis     Redis           `mapstructure:"REDIS" json:"redis" yaml:"redis"`
	Log       Log             `mapstructure:"LOG" json:"log" yaml:"log"`
	MongoDB   MongoDB         `mapstructure:"MONGODB" json:"mongodb" yaml:"mongodb"`
	Mail      Mail            `mapstructure:"MAIL" json:"mail" yaml:"mail"`
	Telemetry TelemetryConfig `mapstructure:"TELEMETRY" yaml:"telemetry"`
	Fluentd   Fluentd         `mapstructure:"FLUENTD" yaml:"fluentd"`
}
