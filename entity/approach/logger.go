package approach

import "github.com/sirupsen/logrus"

// log 进口道模块的日志记录器
var log = logrus.WithField("module", "approach")
