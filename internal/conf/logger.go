// Copyright 2026 Strata Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package conf is strata's ambient logging/config layer, trimmed from
// the teacher's internal/conf (which also wired syslog, file rotation
// and a KV-backed rule store — none of which a pure, I/O-free optimizer
// needs).
package conf

import (
	"os"
	"strings"

	filename "github.com/keepeye/logrus-filename"
	"github.com/sirupsen/logrus"
)

var (
	Log       *logrus.Logger
	IsTesting bool
)

func init() {
	InitLogger()
}

// InitLogger sets up Log the way the teacher's InitLogger does: a
// logrus.Logger with a filename hook and a plain text formatter, so
// every debug diff the rules executor emits carries its origin.
func InitLogger() {
	Log = logrus.New()
	hook := filename.NewHook()
	hook.Field = "file"
	Log.AddHook(hook)

	Log.SetFormatter(&logrus.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
		DisableColors:   true,
		FullTimestamp:   true,
	})

	for _, arg := range os.Args {
		if strings.HasPrefix(arg, "-test.") {
			IsTesting = true
			break
		}
	}
}
