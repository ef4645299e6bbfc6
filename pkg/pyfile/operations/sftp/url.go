package filesftp

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ImGajeed76/pyfile/pkg/pyfile/config"
	"github.com/ImGajeed76/pyfile/pkg/pyfile/sftpmanager"
)

// Target is the parsed form of an sftp:// path.
type Target struct {
	Details sftpmanager.ConnectionDetails
	Path    string
}

// ParseURL splits raw, shaped sftp://[user[:password]@]host[:port]/path,
// into connection details and the remote path. A missing port defaults to
// 22. When the URL names a user but no password, the password is looked up
// in the system keyring under the user@host:port key.
func ParseURL(raw string) (Target, error) {
	rest, ok := strings.CutPrefix(raw, "sftp://")
	if !ok || rest == "" {
		return Target{}, fmt.Errorf("not an sftp url: %q", raw)
	}

	slash := strings.Index(rest, "/")
	if slash < 0 {
		return Target{}, fmt.Errorf("sftp url has no remote path: %q", raw)
	}

	var t Target
	t.Path = rest[slash:]
	t.Details.Port = 22

	authority := rest[:slash]
	if at := strings.LastIndex(authority, "@"); at >= 0 {
		creds := authority[:at]
		authority = authority[at+1:]
		t.Details.Username, t.Details.Password, _ = strings.Cut(creds, ":")
	}

	host, portStr, hasPort := strings.Cut(authority, ":")
	if host == "" {
		return Target{}, fmt.Errorf("sftp url has no host: %q", raw)
	}
	t.Details.Hostname = host
	if hasPort {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return Target{}, fmt.Errorf("invalid port in sftp url %q: %w", raw, err)
		}
		t.Details.Port = port
	}

	if t.Details.Password == "" && t.Details.Username != "" {
		t.Details.Password = config.Password(t.Details.Username, t.Details.Hostname, t.Details.Port)
	}

	return t, nil
}
