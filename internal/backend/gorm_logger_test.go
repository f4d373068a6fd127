package backend

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gormlogger "gorm.io/gorm/logger"
)

func TestGormLoggerLogMode(t *testing.T) {
	base := NewGormLogger()

	silent, ok := base.LogMode(gormlogger.Silent).(*GormLogger)
	assert.True(t, ok)
	assert.Equal(t, gormlogger.Silent, silent.level)
	assert.Equal(t, gormlogger.Info, base.level)

	called := false
	silent.Trace(context.Background(), time.Now(), func() (string, int64) {
		called = true
		return "SELECT 1", 0
	}, errors.New("falla"))
	assert.False(t, called)

	onlyErrors := base.LogMode(gormlogger.Error).(*GormLogger)
	onlyErrors.Trace(context.Background(), time.Now(), func() (string, int64) {
		called = true
		return "SELECT 1", 1
	}, nil)
	assert.False(t, called)

	onlyErrors.Trace(context.Background(), time.Now(), func() (string, int64) {
		called = true
		return "SELECT 1", 0
	}, errors.New("falla"))
	assert.True(t, called)
}
