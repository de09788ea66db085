package layout

import "github.com/sirupsen/logrus"

// log 布局模块的日志记录器
var log = logrus.WithField("module", "layout")
