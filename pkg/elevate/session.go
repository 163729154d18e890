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

package elevate

import (
	"encoding/json"
	goerrors "errors"
	"net"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/sste9512/Vortex/pkg/constants"
	fserror "github.com/sste9512/Vortex/pkg/error"
	"github.com/sste9512/Vortex/pkg/types"
	"github.com/sste9512/Vortex/pkg/utils"
)

// State of an elevation session.
type State int

const (
	Idle State = iota
	Listening
	HelperRequested
	Connected
	Completed
	Canceled
	Disconnected
)

func (s State) String() string {
	switch s {
	case Listening:
		return "listening"
	case HelperRequested:
		return "helper-requested"
	case Connected:
		return "connected"
	case Completed:
		return "completed"
	case Canceled:
		return "canceled"
	case Disconnected:
		return "disconnected"
	}
	return "idle"
}

// reportGrace is how long a session waits for an in-flight completion
// report after the helper process has already exited.
const reportGrace = time.Second

// Protocol spawns elevated helper processes and runs one operation per
// session. It implements types.Elevator.
type Protocol struct {
	config    *types.Config
	helperBin string
}

func NewProtocol(cfg *types.Config) *Protocol {
	helperBin, err := os.Executable()
	if err != nil {
		helperBin = os.Args[0]
	}
	return &Protocol{
		config:    cfg,
		helperBin: helperBin,
	}
}

// Elevate runs a single privileged operation in a fresh session.
func (p *Protocol) Elevate(req *types.ElevationRequest) error {
	s := &session{
		id:       uuid.NewString(),
		protocol: p,
	}
	return s.run(req)
}

// command resolves the elevation facility, falling back to sudo when the
// configured one is not installed.
func (p *Protocol) command() string {
	if p.config.Runner.CommandExists(p.config.ElevationCmd) {
		return p.config.ElevationCmd
	}
	if p.config.Runner.CommandExists("sudo") {
		return "sudo"
	}
	return p.config.ElevationCmd
}

// rejectedExitCode reports whether the facility exit code means the user
// declined the elevation request. pkexec signals a dismissed authentication
// dialog with 126 and a disallowed action with 127, sudo only gives a
// generic 1 which is ambiguous and therefore not treated as a rejection.
func rejectedExitCode(command string, code int) bool {
	if filepath.Base(command) == "pkexec" {
		return code == 126 || code == 127
	}
	return false
}

func exitCode(err error) int {
	var coder interface{ ExitCode() int }
	if goerrors.As(err, &coder) {
		return coder.ExitCode()
	}
	return -1
}

type session struct {
	id       string
	protocol *Protocol

	mu    sync.Mutex
	state State
}

func (s *session) setState(state State) {
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
}

func (s *session) getState() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *session) run(req *types.ElevationRequest) (err error) {
	logger := s.protocol.config.Logger
	cleanup := utils.NewCleanStack()
	defer func() { err = cleanup.Cleanup(err) }()

	req.ID = s.id
	socket := filepath.Join(s.protocol.config.SocketDir, constants.SocketPrefix+s.id+".sock")

	listener, lErr := net.Listen("unix", socket)
	if lErr != nil {
		return fserror.ChannelFailure(req.Op, req.Path, lErr)
	}
	s.setState(Listening)
	cleanup.Push(func() error {
		_ = listener.Close()
		_ = os.Remove(socket)
		return nil
	})
	logger.Debugf("elevation session %s listening on %s", s.id, socket)

	respCh := make(chan *Response, 1)
	serveErrCh := make(chan error, 1)
	go s.serve(listener, req, respCh, serveErrCh)

	command := s.protocol.command()
	helperDone := make(chan error, 1)
	go func() {
		out, rErr := s.protocol.config.Runner.Run(command, s.protocol.helperBin,
			constants.HelperCmd, "--socket", socket)
		if rErr != nil && len(out) > 0 {
			logger.Debugf("elevated helper output: %s", string(out))
		}
		helperDone <- rErr
	}()
	s.setState(HelperRequested)

	select {
	case resp := <-respCh:
		s.setState(Completed)
		return s.completion(req, resp)
	case sErr := <-serveErrCh:
		return fserror.ChannelFailure(req.Op, req.Path, sErr)
	case hErr := <-helperDone:
		if rejectedExitCode(command, exitCode(hErr)) {
			s.setState(Canceled)
			return fserror.Rejected(req.Op, req.Path)
		}
		// The helper may have written its report right before exiting,
		// give the serving goroutine a moment to deliver it.
		select {
		case resp := <-respCh:
			s.setState(Completed)
			return s.completion(req, resp)
		case sErr := <-serveErrCh:
			return fserror.ChannelFailure(req.Op, req.Path, sErr)
		case <-time.After(reportGrace):
		}
		s.setState(Disconnected)
		if hErr == nil {
			// clean exit with no report
			return nil
		}
		return fserror.ChannelFailure(req.Op, req.Path, hErr)
	}
}

func (s *session) completion(req *types.ElevationRequest, resp *Response) error {
	if resp.OK {
		s.protocol.config.Logger.Debugf("elevation session %s completed", s.id)
		return nil
	}
	return fserror.New(req.Op, req.Path, fserror.Code(resp.Code), resp.Error)
}

// serve accepts the single helper connection, sends the request payload and
// waits for the completion report.
func (s *session) serve(listener net.Listener, req *types.ElevationRequest, respCh chan<- *Response, errCh chan<- error) {
	conn, err := listener.Accept()
	if err != nil {
		errCh <- err
		return
	}
	defer conn.Close()
	s.setState(Connected)

	if err = json.NewEncoder(conn).Encode(req); err != nil {
		errCh <- err
		return
	}
	var resp Response
	if err = json.NewDecoder(conn).Decode(&resp); err != nil {
		errCh <- err
		return
	}
	if resp.ID != req.ID {
		errCh <- errors.Errorf("session id mismatch, sent %s got %s", req.ID, resp.ID)
		return
	}
	respCh <- &resp
}
