package internal

import "github.com/go-stdlog/stdlog"

type Config interface {
	GetConfigDir() (string, bool)
	GetLogger() stdlog.Logger
}
