package data

import "github.com/sirupsen/logrus"

var log = logrus.WithField("pkg", "data")
