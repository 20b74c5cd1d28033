package config

const (
	RealtimeRedis    = "redis"
	RealtimeRocketMQ = "rocketmq"
	RealtimeNone     = "none"
)

// Realtime 实时推送通道
type Realtime struct {
	// Driver redis | rocketmq | none
	Driver string `json:"driver" yaml:"driver"`
	// Channel redis 频道名或 rocketmq topic
	Channel string `json:"channel" yaml:"channel"`
}

func (r *Realtime) Topic() string {
	if r == nil || r.Channel == "" {
		return "memora_notice"
	}
	return r.Channel
}

func ProvideRealtimeConfig(cfg *Config) *Realtime {
	if cfg.Realtime == nil {
		return &Realtime{Driver: RealtimeNone}
	}
	return cfg.Realtime
}
