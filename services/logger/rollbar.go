// Package logsvc implements core.Logger.
package logsvc

import (
	"fmt"

	"github.com/rollbar/rollbar-go"
	"github.com/rollbar/rollbar-go/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/trezcool/ecoquest/core"
	"github.com/trezcool/ecoquest/core/user"
)

var rollbarLevels = map[zapcore.Level]string{
	zapcore.DebugLevel: rollbar.DEBUG,
	zapcore.InfoLevel:  rollbar.INFO,
	zapcore.WarnLevel:  rollbar.WARN,
	zapcore.ErrorLevel: rollbar.ERR,
	zapcore.FatalLevel: rollbar.CRIT,
}

// RollbarLogger writes structured entries to zap and reports the same entries to Rollbar.
// Reporting is off until Enable(true), and stays off without a token.
type RollbarLogger struct {
	zl       *zap.Logger
	client   *rollbar.Client
	hasToken bool
}

var _ core.Logger = (*RollbarLogger)(nil)

func NewRollbarLogger(zl *zap.Logger, conf *core.Config) *RollbarLogger {
	client := rollbar.New(conf.RollbarToken, conf.Env, conf.Build, conf.Server.Host, "")
	client.SetStackTracer(errors.StackTracer)
	client.SetEnabled(false)
	return &RollbarLogger{zl: zl, client: client, hasToken: conf.RollbarToken != ""}
}

func (l *RollbarLogger) Enable(enabled bool) {
	l.client.SetEnabled(enabled && l.hasToken)
}

// prepare splits args into what rollbar reports: the first error, and extras built from
// map args and any other value (as argN). The first user.User becomes the reported person.
// expected args: error, map[string]interface{}, user.User
func (l *RollbarLogger) prepare(args []interface{}) (extras map[string]interface{}, err error) {
	var usrSet bool
	extras = make(map[string]interface{})
	for i, arg := range args {
		switch a := arg.(type) {
		case user.User:
			if !usrSet {
				l.client.SetPerson(a.ID, a.Name, a.Email)
				usrSet = true
			}
		case error:
			if err == nil {
				err = a
			} else {
				extras[fmt.Sprintf("arg%d", i)] = a.Error()
			}
		case map[string]interface{}:
			for k, v := range a {
				extras[k] = v
			}
		default:
			extras[fmt.Sprintf("arg%d", i)] = a
		}
	}
	if !usrSet {
		l.client.ClearPerson()
	}
	return extras, err
}

func fields(args []interface{}) []zap.Field {
	fs := make([]zap.Field, 0, len(args))
	for i, arg := range args {
		switch a := arg.(type) {
		case error:
			fs = append(fs, zap.Error(a))
		case user.User:
			fs = append(fs, zap.String("user_id", a.ID), zap.String("user_role", a.Role))
		case map[string]interface{}:
			for k, v := range a {
				fs = append(fs, zap.Any(k, v))
			}
		default:
			fs = append(fs, zap.Any(fmt.Sprintf("arg%d", i), a))
		}
	}
	return fs
}

func (l *RollbarLogger) log(lvl zapcore.Level, msg string, args []interface{}) {
	level := rollbarLevels[lvl]
	if extras, err := l.prepare(args); err != nil {
		extras["message"] = msg
		l.client.ErrorWithExtras(level, err, extras)
	} else {
		l.client.MessageWithExtras(level, msg, extras)
	}
	if lvl == zapcore.FatalLevel {
		l.client.Wait()
	}
	if ce := l.zl.Check(lvl, msg); ce != nil {
		ce.Write(fields(args)...)
	}
}

func (l *RollbarLogger) Debug(msg string, args ...interface{}) { l.log(zapcore.DebugLevel, msg, args) }
func (l *RollbarLogger) Info(msg string, args ...interface{})  { l.log(zapcore.InfoLevel, msg, args) }
func (l *RollbarLogger) Warn(msg string, args ...interface{})  { l.log(zapcore.WarnLevel, msg, args) }
func (l *RollbarLogger) Error(msg string, args ...interface{}) { l.log(zapcore.ErrorLevel, msg, args) }

// Fatal waits for Rollbar to flush, then exits through zap.
func (l *RollbarLogger) Fatal(msg string, args ...interface{}) { l.log(zapcore.FatalLevel, msg, args) }
