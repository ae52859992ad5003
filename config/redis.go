package config

// RedisConfig 是列表缓存使用的 Redis 连接配置
type RedisConfig struct {
	Address      string `mapstructure:"address" json:"address" yaml:"address"`
	Password     string `mapstructure:"password" json:"-" yaml:"password"`
	DB           int    `mapstructure:"db" json:"db" yaml:"db"`
	PoolSize     int    `mapstructure:"poolSize" json:"poolSize" yaml:"poolSize"`
	MinIdleConns int    `mapstructure:"minIdleConns" json:"minIdleConns" yaml:"minIdleConns"`
	DialTimeout  int    `mapstructure:"dialTimeout" json:"dialTimeout" yaml:"dialTimeout"` // 秒
}
