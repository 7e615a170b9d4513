package main

import (
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	logLevelFlag  = "log-level"
	ipFlag        = "ip"
	portFlag      = "port"
	cacheSizeFlag = "cache-size"
)

// mustBindPFlag binds key to a pflag and panics if the binding fails.
func mustBindPFlag(v *viper.Viper, key string, flag *pflag.Flag) {
	if err := v.BindPFlag(key, flag); err != nil {
		panic("failed to bind pflag: " + err.Error())
	}
}
