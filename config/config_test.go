package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
app:
  name: memora
  env: dev
  debug: true
mysql:
  host: 127.0.0.1
  port: 3306
  username: root
  password: secret
  database: memora
redis:
  address: 127.0.0.1
  port: 6379
jwt:
  secret: dev-secret
realtime:
  driver: redis
rocketmq:
  nameserver:
    - 127.0.0.1:9876
  producer:
    group: memora_producer
`

func TestParse(t *testing.T) {
	conf, err := Parse([]byte(sample))
	require.NoError(t, err)

	assert.True(t, conf.Debug())
	assert.Equal(t, "root:secret@tcp(127.0.0.1:3306)/memora?charset=utf8mb4&parseTime=True&loc=UTC", conf.MySQL.Dsn())
	assert.Equal(t, "127.0.0.1:6379", conf.Redis.Addr())
	assert.Equal(t, []string{"127.0.0.1:9876"}, conf.RocketMQ.NameServer)
	assert.Equal(t, RealtimeRedis, ProvideRealtimeConfig(conf).Driver)
	assert.Equal(t, "memora_notice", conf.Realtime.Topic())

	// 缺省的段落补默认值
	assert.Equal(t, 8080, conf.Server.Http)
	assert.Equal(t, 8081, conf.Server.Websocket)
}

func TestParse_Empty(t *testing.T) {
	conf, err := Parse(nil)
	require.NoError(t, err)

	assert.False(t, conf.Debug())
	assert.Equal(t, RealtimeNone, ProvideRealtimeConfig(conf).Driver)
	assert.False(t, (&Config{}).Debug())
}

func TestOverrideFromEnv(t *testing.T) {
	t.Setenv("MYSQL_DSN", "user:pw@tcp(db:3306)/memora")
	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("REDIS_ADDR", "redis")
	t.Setenv("REDIS_PORT", "6380")
	t.Setenv("REALTIME_DRIVER", RealtimeRocketMQ)

	conf, err := Parse([]byte(sample))
	require.NoError(t, err)
	conf.overrideFromEnv()

	assert.Equal(t, "user:pw@tcp(db:3306)/memora", conf.MySQL.Dsn())
	assert.Equal(t, "from-env", conf.Jwt.Secret)
	assert.Equal(t, "redis:6380", conf.Redis.Addr())
	assert.Equal(t, RealtimeRocketMQ, conf.Realtime.Driver)
}

func TestLoadEnv_MissingFile(t *testing.T) {
	t.Setenv("APP_ENV", "")
	assert.Equal(t, "dev", LoadEnv("testdata-does-not-exist.env"))
	assert.Equal(t, "configs/config.dev.yaml", Path("dev"))
}
