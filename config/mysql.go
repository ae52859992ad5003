package config

// SourceConfig 代表一个数据库源（主库或从库）
type SourceConfig struct {
	DSN string `mapstructure:"dsn" json:"-" yaml:"dsn"`
	// 以下连接池参数为可选覆盖项，nil 表示沿用共享设置
	MaxIdleConns    *int `mapstructure:"max_idle_conns,omitempty" json:"max_idle_conns,omitempty" yaml:"max_idle_conns,omitempty"`
	MaxOpenConns    *int `mapstructure:"max_open_conns,omitempty" json:"max_open_conns,omitempty" yaml:"max_open_conns,omitempty"`
	ConnMaxLifetime *int `mapstructure:"conn_max_lifetime,omitempty" json:"conn_max_lifetime,omitempty" yaml:"conn_max_lifetime,omitempty"` // 秒
}

// MySQLConfig 主库 + 可选从库列表。Read 为空表示不启用读写分离。
type MySQLConfig struct {
	Write SourceConfig   `mapstructure:"write" json:"write" yaml:"write"`
	Read  []SourceConfig `mapstructure:"read" json:"read" yaml:"read"`

	SharedMaxIdleConns    int `mapstructure:"max_idle_conns" json:"max_idle_conns" yaml:"max_idle_conns"`
	SharedMaxOpenConns    int `mapstructure:"max_open_conn" json:"max_open_conn" yaml:"max_open_conn"`
	SharedConnMaxLifetime int `mapstructure:"conn_max_lifetime" json:"conn_max_lifetime" yaml:"conn_max_lifetime"`
}

// PoolSettings 返回主库最终生效的连接池参数：Write 中的覆盖项优先，其次是共享设置。
// dbresolver 下读写共用一个池，因此只看主库的覆盖项。
func (c MySQLConfig) PoolSettings() (maxIdle, maxOpen, maxLifetimeSeconds int) {
	maxIdle, maxOpen, maxLifetimeSeconds = c.SharedMaxIdleConns, c.SharedMaxOpenConns, c.SharedConnMaxLifetime
	if c.Write.MaxIdleConns != nil {
		maxIdle = *c.Write.MaxIdleConns
	}
	if c.Write.MaxOpenConns != nil {
		maxOpen = *c.Write.MaxOpenConns
	}
	if c.Write.ConnMaxLifetime != nil {
		maxLifetimeSeconds = *c.Write.ConnMaxLifetime
	}
	return maxIdle, maxOpen, maxLifetimeSeconds
}
