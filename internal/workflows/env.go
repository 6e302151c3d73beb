package workflows

import (
	"time"

	"github.com/PolarWolf314/rvault/internal/audit"
	"github.com/PolarWolf314/rvault/internal/gpg"
	"github.com/PolarWolf314/rvault/internal/identity"
	logger "github.com/PolarWolf314/rvault/internal/logging"
	"github.com/PolarWolf314/rvault/internal/secrets"
)

// Env carries what every workflow needs: the vault root and the engine
// collaborators. One Env serves one invocation.
type Env struct {
	Root   string
	Engine gpg.Engine
	Keys   gpg.KeyLister

	// Passphrase is handed to the engine on decrypt. nil relies on the agent.
	Passphrase gpg.PassphraseSource

	Logger logger.Logger

	// Now defaults to time.Now.
	Now func() time.Time
}

func (e *Env) now() time.Time {
	if e.Now == nil {
		return time.Now()
	}
	return e.Now()
}

func (e *Env) store() *secrets.Store {
	return secrets.NewStore(e.Root)
}

// boundKey returns the key id the vault is bound to.
func (e *Env) boundKey() (string, error) {
	keyID, err := identity.Read(e.Root)
	if err != nil {
		return "", err
	}
	e.Logger.Debugf("Vault %s is bound to key %s", e.Root, keyID)
	return keyID, nil
}

func (e *Env) audit(entry audit.Entry) {
	if err := audit.Log(e.Root, entry); err != nil {
		e.Logger.Warnf("Audit log not updated: %v", err)
	}
}

func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
