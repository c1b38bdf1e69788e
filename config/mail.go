package config

type Mail struct {
	Enabled  bool   `mapstructure:"ENABLED" json:"enabled" yaml:"enabled"`
	Host     string `mapstructure:"HOST" json:"host" yaml:"host"`
	Port     int    `mapstructure:"PORT" json:"port" yaml:"port"`
	Username string `mapstructure:"USERNAME" json:"username" yaml:"username"`
	Password string `mapstructure:"PASSWORD" json:"password" yaml:"password"`
	UseTLS   bool   `mapstructure:"USE_TLS" json:"use_tls" yaml:"use_tls"`
	// 寄件人位址
	From string `mapstructure:"FROM" json:"from" yaml:"from"`
}
