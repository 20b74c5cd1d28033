package database

import (
	"fmt"
	"time"

	"Memora/config"
	"Memora/models"
	"Memora/pkg/log"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Now 入库时间统一 UTC 毫秒精度，保证 DATETIME(3) 读回后可做等值匹配
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

func gormConfig(debug bool) *gorm.Config {
	level := logger.Warn
	if debug {
		level = logger.Info
	}
	return &gorm.Config{
		TranslateError: true,
		NowFunc:        Now,
		Logger:         logger.Default.LogMode(level),
	}
}

// NewDB 初始化数据库连接
func NewDB(conf *config.Config) *gorm.DB {
	db, err := gorm.Open(mysql.Open(conf.MySQL.Dsn()), gormConfig(conf.Debug()))
	if err != nil {
		log.L.Fatal("failed to connect database", zap.Error(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.L.Fatal("failed to get sql.DB", zap.Error(err))
	}
	if conf.MySQL.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(conf.MySQL.MaxOpenConns)
	}
	if conf.MySQL.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(conf.MySQL.MaxIdleConns)
	}
	sqlDB.SetConnMaxLifetime(time.Hour)

	log.L.Info("connect database success")
	return db
}

// NewSQLite 打开 sqlite 数据库，本地调试和测试使用
func NewSQLite(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn), gormConfig(false))
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	// sqlite 只允许单写连接
	sqlDB.SetMaxOpenConns(1)
	return db, nil
}

// Migrate 同步表结构
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
