package logsvc

import "github.com/trezcool/studentmarks/core"

// New returns the app logger: Rollbar backed when a token is configured, zap only otherwise.
// The returned func flushes pending entries.
func New(conf *core.Config) (core.Logger, func(), error) {
	zl, err := NewZapLogger(conf)
	if err != nil {
		return nil, nil, err
	}
	if conf.RollbarToken == "" {
		return zl, func() { _ = zl.Sync() }, nil
	}
	rl := NewRollbarLogger(zl, conf)
	rl.Enable(!(conf.Debug || conf.TestMode))
	return rl, func() { rl.Close(); _ = zl.Sync() }, nil
}
