// internal/ssh/keys.go

package ssh

import (
	"os"
	"strings"

	apperr "sshTui/internal/error"
	"sshTui/internal/utils"

	"golang.org/x/crypto/ssh"
)

type KeyInfo struct {
	Type        string
	Fingerprint string
	Comment     string
}

// Fingerprint describes the public half of an IdentityFile. The private key
// is never read; "<file>.pub" must sit next to it.
func Fingerprint(identityFile string) (KeyInfo, error) {
	path := utils.ExpandHome(strings.TrimSpace(identityFile))
	if path == "" {
		return KeyInfo{}, apperr.New(apperr.ValidationError, "no identity file", nil)
	}
	if !strings.HasSuffix(path, ".pub") {
		path += ".pub"
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return KeyInfo{}, apperr.Newf(apperr.NotFoundError, "public key %s not found", path)
		}
		return KeyInfo{}, apperr.New(apperr.IOError, "failed to read public key", err)
	}

	key, comment, _, _, err := ssh.ParseAuthorizedKey(data)
	if err != nil {
		return KeyInfo{}, apperr.New(apperr.ConfigError, "failed to parse public key", err)
	}

	return KeyInfo{
		Type:        key.Type(),
		Fingerprint: ssh.FingerprintSHA256(key),
		Comment:     comment,
	}, nil
}
