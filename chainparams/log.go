package chainparams

import "github.com/sirupsen/logrus"

var log = logrus.WithField("pkg", "chainparams")
