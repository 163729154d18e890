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

package fsops

import (
	"os"

	"github.com/sste9512/Vortex/pkg/types"
)

// sameFile reports whether src and dst resolve to the identical underlying
// file, by device and serial number. A missing destination passes the
// check. Copying a file onto itself would truncate it before the first
// read, so the copy wrapper refuses such pairs up front.
func sameFile(fs types.FS, src, dst string) (bool, error) {
	srcInfo, err := fs.Stat(src)
	if err != nil {
		return false, err
	}
	dstInfo, err := fs.Stat(dst)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return os.SameFile(srcInfo, dstInfo), nil
}
