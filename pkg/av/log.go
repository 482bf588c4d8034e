package av

/*
#cgo pkg-config: libavutil
#include <libavutil/log.h>
#include "log_shim.h"
*/
import "C"
import (
	"strings"

	"go.uber.org/zap"
)

type LogLevel int

const (
	LogLevelQuiet   LogLevel = C.AV_LOG_QUIET
	LogLevelError   LogLevel = C.AV_LOG_ERROR
	LogLevelWarning LogLevel = C.AV_LOG_WARNING
	LogLevelInfo    LogLevel = C.AV_LOG_INFO
	LogLevelVerbose LogLevel = C.AV_LOG_VERBOSE
	LogLevelDebug   LogLevel = C.AV_LOG_DEBUG
)

func init() {
	C.av_log_set_level(C.AV_LOG_WARNING)
	C.av_log_set_callback((*[0]byte)(C.cgoLogCallback))
}

func SetLogLevel(level LogLevel) {
	C.av_log_set_level(C.int(level))
}

//export goLogFunc
func goLogFunc(level C.int, msg *C.char) {
	line := strings.TrimRight(C.GoString(msg), "\n")
	switch {
	case level <= C.AV_LOG_ERROR:
		zap.L().Error(line)
	case level <= C.AV_LOG_WARNING:
		zap.L().Warn(line)
	case level <= C.AV_LOG_INFO:
		zap.L().Info(line)
	default:
		zap.L().Debug(line)
	}
}
