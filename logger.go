package mllp

import "go.uber.org/zap"

// 日志接口，zap的SugaredLogger天然满足
type Logger interface {
	Debug(args ...interface{})
	Info(args ...interface{})
	Error(args ...interface{})
}

var log Logger = newDefaultLogger()

func newDefaultLogger() Logger {
	logger, err := zap.NewDevelopment(zap.WithCaller(false))
	if err != nil {
		panic(err)
	}
	return logger.Sugar()
}

// 获取日志组件
func GetLogger() Logger {
	return log
}

// 替换日志组件
func SetLogger(l Logger) {
	log = l
}
