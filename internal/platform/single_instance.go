package platform

import (
	"errors"
	"fmt"
	"hash/fnv"
	"net"
	"path/filepath"
)

const (
	minLockPort = 20000
	maxLockPort = 39999
)

// ErrAlreadyRunning indicates another stopwatch session holds the lock.
var ErrAlreadyRunning = errors.New("stopwatch session already running")

// InstanceGuard holds the session lock shared by the desktop and terminal
// front ends.
type InstanceGuard struct {
	listener net.Listener
	key      string
	address  string
}

// SessionKey identifies a stopwatch session for one user: the application
// name plus the configuration directory its settings live in.
func SessionKey(appName, configDir string) string {
	if configDir == "" {
		return appName
	}
	return appName + "@" + filepath.Clean(configDir)
}

// AcquireSingleInstance binds the localhost port derived from key. A second
// caller with the same key gets ErrAlreadyRunning until Release.
func AcquireSingleInstance(key string) (*InstanceGuard, error) {
	address := fmt.Sprintf("127.0.0.1:%d", portFromKey(key))
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return nil, fmt.Errorf("%w (session %q on %s): %v", ErrAlreadyRunning, key, address, err)
	}
	return &InstanceGuard{listener: listener, key: key, address: address}, nil
}

// Release frees the session lock.
func (guard *InstanceGuard) Release() error {
	if guard == nil || guard.listener == nil {
		return nil
	}
	return guard.listener.Close()
}

// Key returns the session key the guard holds.
func (guard *InstanceGuard) Key() string {
	if guard == nil {
		return ""
	}
	return guard.key
}

// Address returns the bound address.
func (guard *InstanceGuard) Address() string {
	if guard == nil {
		return ""
	}
	return guard.address
}

func portFromKey(key string) int {
	hash := fnv.New32a()
	_, _ = hash.Write([]byte(key))
	rangeSize := maxLockPort - minLockPort + 1
	return minLockPort + int(hash.Sum32()%uint32(rangeSize))
}
