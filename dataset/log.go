package dataset

import "github.com/sirupsen/logrus"

// kvLogger badger/pebble 로그를 logrus 로 보냄. 엔진 내부 Info 는 Debug 로 낮춘다.
type kvLogger struct {
	entry *logrus.Entry
}

func newKVLogger(engine string) kvLogger {
	return kvLogger{entry: logrus.WithField("engine", engine)}
}

func (l kvLogger) Debugf(format string, args ...interface{})   { l.entry.Debugf(format, args...) }
func (l kvLogger) Infof(format string, args ...interface{})    { l.entry.Debugf(format, args...) }
func (l kvLogger) Warningf(format string, args ...interface{}) { l.entry.Warnf(format, args...) }
func (l kvLogger) Errorf(format string, args ...interface{})   { l.entry.Errorf(format, args...) }
func (l kvLogger) Fatalf(format string, args ...interface{})   { l.entry.Fatalf(format, args...) }
