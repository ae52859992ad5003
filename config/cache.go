package config

// ListingCacheConfig 控制列表页缓存的过期时间和定时预热。
type ListingCacheConfig struct {
	// TTLSeconds 是单个列表缓存键的存活时间（秒）。写操作会主动失效对应的键，
	// TTL 只是兜底，防止失效消息丢失时缓存长期不一致。<= 0 时使用 constant.DefaultListingCacheTTL。
	TTLSeconds int `mapstructure:"ttlSeconds" json:"ttlSeconds" yaml:"ttlSeconds"`

	// WarmCronSpec 是公共目录缓存预热任务的 cron 表达式，例如 "@every 10m"。
	// 为空时使用 constant.ListingWarmCronSpec。
	WarmCronSpec string `mapstructure:"warmCronSpec" json:"warmCronSpec" yaml:"warmCronSpec"`
}
