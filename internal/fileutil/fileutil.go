// Package fileutil holds file permission modes for generated output.
package fileutil

import "os"

// OwnerReadWrite is the file permission mode for specification output
// files, which may describe internal APIs (owner read/write only).
const OwnerReadWrite os.FileMode = 0o600

// DirPerm is the permission mode for directories created to hold output.
const DirPerm os.FileMode = 0o755
