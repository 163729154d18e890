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
	"net"
	"os"
	"strconv"

	"github.com/pkg/errors"

	fserror "github.com/sste9512/Vortex/pkg/error"
	"github.com/sste9512/Vortex/pkg/types"
	"github.com/sste9512/Vortex/pkg/utils"
)

// Serve is the elevated process side of the protocol. It connects back to
// the session socket, receives the single requested operation, applies it
// and reports the outcome. The returned error only covers channel
// failures, a failing operation is still a delivered report.
func Serve(fs types.FS, logger types.Logger, socket string) error {
	conn, err := net.Dial("unix", socket)
	if err != nil {
		return errors.Wrapf(err, "connecting to session socket %s", socket)
	}
	defer conn.Close()

	var req types.ElevationRequest
	if err = json.NewDecoder(conn).Decode(&req); err != nil {
		return errors.Wrap(err, "decoding elevation request")
	}
	logger.Debugf("elevated helper running %s on '%s'", req.Op, req.Path)

	resp := Response{ID: req.ID, OK: true}
	if opErr := Apply(fs, &req); opErr != nil {
		resp.OK = false
		resp.Error = opErr.Error()
		resp.Code = int(fserror.NormalizeCode(opErr))
	}
	if err = json.NewEncoder(conn).Encode(&resp); err != nil {
		return errors.Wrap(err, "reporting completion")
	}
	return nil
}

// Apply executes the one operation an elevation request asks for.
func Apply(fs types.FS, req *types.ElevationRequest) error {
	switch req.Op {
	case types.ElevateGrant:
		return grant(fs, req.Path, req.Mode)
	case types.ElevateRemove:
		return fs.RemoveAll(req.Path)
	case types.ElevateRename:
		return fs.Rename(req.Path, req.Target)
	case types.ElevateMkdir:
		return utils.MkdirAll(fs, req.Path, req.Mode)
	case types.ElevateChmod:
		return fs.Chmod(req.Path, req.Mode)
	case types.ElevateWrite:
		return fs.WriteFile(req.Path, req.Data, req.Mode)
	case types.ElevateSymlink:
		return fs.Symlink(req.Path, req.Target)
	}
	return errors.Errorf("unknown elevated operation '%s'", req.Op)
}

// grant hands the invoking user access to path. Under pkexec the invoking
// uid is published in PKEXEC_UID, in that case ownership is transferred,
// otherwise the owner mode bits are widened.
func grant(fs types.FS, path string, mode os.FileMode) error {
	if env := os.Getenv("PKEXEC_UID"); env != "" {
		if uid, err := strconv.Atoi(env); err == nil {
			return fs.Chown(path, uid, -1)
		}
	}
	if mode == 0 {
		mode = 0700
	}
	fi, err := fs.Stat(path)
	if err != nil {
		return err
	}
	return fs.Chmod(path, fi.Mode().Perm()|mode)
}
