package backend

import (
	"context"
	"time"

	"github.com/beego/beego/v2/core/logs"
	gormlogger "gorm.io/gorm/logger"
)

// NewGormLogger redirige el log de gorm a beego/core/logs con nivel Info.
func NewGormLogger() *GormLogger {
	return &GormLogger{level: gormlogger.Info}
}

// GormLogger implementa gormlogger.Interface sobre core/logs.
type GormLogger struct {
	level gormlogger.LogLevel
}

func (l *GormLogger) LogMode(lvl gormlogger.LogLevel) gormlogger.Interface {
	newlogger := *l
	newlogger.level = lvl
	return &newlogger
}

func (l *GormLogger) Info(ctx context.Context, str string, rest ...interface{}) {
	if l.level >= gormlogger.Info {
		logs.Info(str, rest...)
	}
}

func (l *GormLogger) Warn(ctx context.Context, str string, rest ...interface{}) {
	if l.level >= gormlogger.Warn {
		logs.Warn(str, rest...)
	}
}

func (l *GormLogger) Error(ctx context.Context, str string, rest ...interface{}) {
	if l.level >= gormlogger.Error {
		logs.Error(str, rest...)
	}
}

func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.level <= gormlogger.Silent {
		return
	}
	switch {
	case err != nil && l.level >= gormlogger.Error:
		sql, rows := fc()
		logs.Error("Took: %s, Err:%s, SQL: %s, AffectedRows: %d", time.Since(begin).String(), err, sql, rows)
	case err == nil && l.level >= gormlogger.Info:
		sql, rows := fc()
		logs.Debug("Took: %s, SQL: %s, AffectedRows: %d", time.Since(begin).String(), sql, rows)
	}
}
