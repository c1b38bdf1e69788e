package config

type Auth struct {
	// JWT 簽章密鑰
	JWTSecret string `mapstructure:"JWT_SECRET" json:"jwt_secret" yaml:"jwt_secret"`
	// Access token 有效分鐘數
	AccessTokenTTL int `mapstructure:"ACCESS_TOKEN_TTL" json:"access_token_ttl" yaml:"access_token_ttl"`
	// Refresh token 有效小時數
	RefreshTokenTTL int `mapstructure:"REFRESH_TOKEN_TTL" json:"refresh_token_ttl" yaml:"refresh_token_ttl"`
	// 登入嘗試限制（每個視窗內次數）
	LoginRateLimit  int   `mapstructure:"LOGIN_RATE_LIMIT" json:"login_rate_limit" yaml:"login_rate_limit"`
	LoginRateWindow int64 `mapstructure:"LOGIN_RATE_WINDOW" json:"login_rate_window" yaml:"login_rate_window"`
	// 試用天數與預設席次（註冊時建立組織用）
	TrialDays    int `mapstructure:"TRIAL_DAYS" json:"trial_days" yaml:"trial_days"`
	DefaultSeats int `mapstructure:"DEFAULT_SEATS" json:"default_seats" yaml:"default_seats"`
}
