package conf

import (
	"log"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

var Conf *viper.Viper

// InitConf loads the yaml config at path and keeps watching it for changes.
func InitConf(path string) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		log.Fatalf("read config %s failed: %v", path, err)
	}
	v.OnConfigChange(func(e fsnotify.Event) {
		log.Printf("config file %s reloaded", e.Name)
	})
	v.WatchConfig()
	Conf = v
}
