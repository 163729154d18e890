/*
Copyright © 2024 - 2026 Vortex Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package prompt implements the two interactive recovery decision points of
// the filesystem operations layer: the file-busy prompt and the
// access-denied prompt. A non-interactive implementation is provided for
// headless contexts, it auto-resolves both prompts as if the user had
// accepted the recovery action.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/sste9512/Vortex/pkg/types"
)

// NonInteractive is the prompter used when no interactive surface is
// available. Busy resolves to retry, access-denied resolves to granting
// permission. A short pause is inserted before busy retries so persistent
// contention does not turn into a hot loop.
type NonInteractive struct {
	logger types.Logger
	pause  time.Duration
}

func NewNonInteractive(logger types.Logger) *NonInteractive {
	return &NonInteractive{logger: logger, pause: 100 * time.Millisecond}
}

func (p *NonInteractive) AskBusy(path string) (types.BusyChoice, error) {
	p.logger.Debugf("'%s' is busy, retrying without prompting", path)
	time.Sleep(p.pause)
	return types.BusyRetry, nil
}

func (p *NonInteractive) AskAccessDenied(path string) (types.AccessChoice, error) {
	p.logger.Debugf("'%s' needs elevated permission, granting without prompting", path)
	return types.AccessGrant, nil
}

// Console prompts on a terminal reader/writer pair. Invalid answers are
// asked again, a read failure aborts the prompt with an error.
type Console struct {
	in     *bufio.Reader
	out    io.Writer
	logger types.Logger
}

func NewConsole(in io.Reader, out io.Writer, logger types.Logger) *Console {
	return &Console{in: bufio.NewReader(in), out: out, logger: logger}
}

func (p *Console) AskBusy(path string) (types.BusyChoice, error) {
	for {
		fmt.Fprintf(p.out, "'%s' is open in another application. [r]etry/[c]ancel: ", path)
		answer, err := p.readAnswer()
		if err != nil {
			return types.BusyCancel, err
		}
		switch answer {
		case "r", "retry":
			return types.BusyRetry, nil
		case "c", "cancel":
			return types.BusyCancel, nil
		}
	}
}

func (p *Console) AskAccessDenied(path string) (types.AccessChoice, error) {
	for {
		fmt.Fprintf(p.out, "'%s' requires elevated permission. [r]etry/[g]rant/[c]ancel: ", path)
		answer, err := p.readAnswer()
		if err != nil {
			return types.AccessCancel, err
		}
		switch answer {
		case "r", "retry":
			return types.AccessRetry, nil
		case "g", "grant":
			return types.AccessGrant, nil
		case "c", "cancel":
			return types.AccessCancel, nil
		}
	}
}

func (p *Console) readAnswer() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.ToLower(strings.TrimSpace(line)), nil
}
