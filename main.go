package main

import (
	"flag"

	easy "git.fiblab.net/utils/logrus-easy-formatter"
	"github.com/sirupsen/logrus"
	"github.com/tsinghua-fib-lab/junction-sim-oss/task"
	"github.com/tsinghua-fib-lab/junction-sim-oss/tui"
	"github.com/tsinghua-fib-lab/junction-sim-oss/utils/config"
)

var (
	// 配置文件路径，留空且未提供config-data则使用内置默认配置
	configPath = flag.String("config", "", "config file path (empty means built-in defaults)")
	// 配置文件Base64编码后的数据
	configData = flag.String("config-data", "", "config file base64 encoded data")
	// 终端可视化模式：用tcell逐帧绘制路口，而不是无界面快进
	withTUI = flag.Bool("tui", false, "render the junction in the terminal at the configured FPS")

	// log
	logLevels = map[string]logrus.Level{
		"trace":    logrus.TraceLevel,
		"debug":    logrus.DebugLevel,
		"info":     logrus.InfoLevel,
		"warn":     logrus.WarnLevel,
		"error":    logrus.ErrorLevel,
		"critical": logrus.FatalLevel,
		"off":      logrus.PanicLevel,
	}
	logLevel = flag.String("log.level", "info", "日志级别（可选项：trace debug info warn error critical off）")

	log = logrus.WithField("module", "simulet")
)

func main() {
	flag.Parse()
	logrus.SetFormatter(&easy.Formatter{
		TimestampFormat: "2006-01-02 15:04:05.0000",
		LogFormat:       "[%module%] [%time%] [%lvl%] %msg%\n",
	})
	// log: 运行时才修改
	if level, ok := logLevels[*logLevel]; ok {
		logrus.SetLevel(level)
	} else {
		log.Panicf("log.level must be one of %v", logLevels)
	}
	// 获取配置
	var c config.Config
	var err error
	switch {
	case *configPath != "":
		c, err = config.Load(*configPath)
	case *configData != "":
		c, err = config.Decode(*configData)
	default:
		c = config.Default()
		log.Infof("no config given, using built-in defaults")
	}
	if err != nil {
		log.Panicf("config load err: %v", err)
	}
	if err := c.Validate(); err != nil {
		log.Panicf("config validate err: %v", err)
	}
	log.Infof("%+v", c)

	ctx := task.NewContext(c)
	if *withTUI {
		if err := tui.Run(ctx); err != nil {
			log.Panicf("tui err: %v", err)
		}
		return
	}
	ctx.Run()
}
