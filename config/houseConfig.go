package config

import "github.com/Xushengqwer/go-common/config"

// HouseConfig 是房源服务的根配置，由 core.LoadConfig 从 YAML 文件加载。
type HouseConfig struct {
	ZapConfig          config.ZapConfig     `mapstructure:"zapConfig" json:"zapConfig" yaml:"zapConfig"`
	GormLogConfig      config.GormLogConfig `mapstructure:"gormLogConfig" json:"gormLogConfig" yaml:"gormLogConfig"`
	ServerConfig       config.ServerConfig  `mapstructure:"serverConfig" json:"serverConfig" yaml:"serverConfig"`
	TracerConfig       config.TracerConfig  `mapstructure:"tracerConfig" json:"tracerConfig" yaml:"tracerConfig"`
	ListingCacheConfig ListingCacheConfig   `mapstructure:"listingCacheConfig" json:"listingCacheConfig" yaml:"listingCacheConfig"`
	MySQLConfig        MySQLConfig          `mapstructure:"mysqlConfig" json:"mysqlConfig" yaml:"mysqlConfig"`
	RedisConfig        RedisConfig          `mapstructure:"redisConfig" json:"redisConfig" yaml:"redisConfig"`
	KafkaConfig        KafkaConfig          `mapstructure:"kafkaConfig" json:"kafkaConfig" yaml:"kafkaConfig"`
	COSConfig          COSConfig            `mapstructure:"houseImagesCosConfig" json:"houseImagesCosConfig" yaml:"houseImagesCosConfig"`
}
