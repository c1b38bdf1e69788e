package config

type App struct {
	// 當前開發環境
	Env string `mapstructure:"ENV" json:"env" yaml:"env"`
	// 服務端口
	Port uint32 `mapstructure:"PORT" json:"port" yaml:"port"`
	// 服務名稱
	Name string `mapstructure:"NAME" json:"name" yaml:"name"`
	// 服務版本
	Version string `mapstructure:"VERSION" json:"version" yaml:"version"`
	// 前端站台位址（活動連結、信件內連結用）
	BaseURL        string `mapstructure:"BASE_URL" json:"base_url" yaml:"base_url"`
	SwaggerEnabled bool   `mapstructure:"SWAGGER_ENABLED" json:"swagger_enabled" yaml:"swagger_enabled"`
}
