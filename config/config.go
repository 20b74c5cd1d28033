package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config 配置信息
type Config struct {
	App      *App            `json:"app" yaml:"app"`
	Redis    *Redis          `json:"redis" yaml:"redis"`
	MySQL    *MySQL          `json:"mysql" yaml:"mysql"`
	Jwt      *Jwt            `json:"jwt" yaml:"jwt"`
	Server   *Server         `json:"server" yaml:"server"`
	RocketMQ *RocketMQConfig `json:"rocketmq" yaml:"rocketmq"`
	Realtime *Realtime       `json:"realtime" yaml:"realtime"`
}

type Server struct {
	Http      int `json:"http" yaml:"http"`
	Websocket int `json:"websocket" yaml:"websocket"`
}

// LoadEnv 加载 .env（不存在时忽略），返回当前环境名
func LoadEnv(files ...string) string {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(fmt.Sprintf("load .env error: %v", err))
	}
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	return env
}

// Path 环境对应的配置文件
func Path(env string) string {
	return fmt.Sprintf("configs/config.%s.yaml", env)
}

func New(filename string) *Config {
	content, err := os.ReadFile(filename)
	if err != nil {
		panic(err)
	}

	conf, err := Parse(content)
	if err != nil {
		panic(fmt.Sprintf("解析 %s 读取错误: %v", filename, err))
	}
	conf.overrideFromEnv()

	return conf
}

func Parse(content []byte) (*Config, error) {
	var conf Config
	if err := yaml.Unmarshal(content, &conf); err != nil {
		return nil, err
	}
	if conf.App == nil {
		conf.App = &App{}
	}
	if conf.Server == nil {
		conf.Server = &Server{Http: 8080, Websocket: 8081}
	}
	if conf.Jwt == nil {
		conf.Jwt = &Jwt{}
	}
	if conf.MySQL == nil {
		conf.MySQL = &MySQL{}
	}
	if conf.Redis == nil {
		conf.Redis = &Redis{}
	}
	return &conf, nil
}

func (c *Config) overrideFromEnv() {
	if v := os.Getenv("MYSQL_DSN"); v != "" {
		c.MySQL.DSN = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		c.Jwt.Secret = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		c.Redis.Address = v
	}
	if v := os.Getenv("REDIS_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Redis.Port = port
		}
	}
	if v := os.Getenv("REALTIME_DRIVER"); v != "" {
		if c.Realtime == nil {
			c.Realtime = &Realtime{}
		}
		c.Realtime.Driver = v
	}
}

// Debug 调试模式
func (c *Config) Debug() bool {
	return c.App != nil && c.App.Debug
}
