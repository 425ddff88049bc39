package sessions

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/thand-io/terminal/internal/common"
	"github.com/thand-io/terminal/internal/models"
	"gopkg.in/yaml.v3"
)

var DEFAULT_SESSION_PATH = "~/.config/terminal/"

const SESSION_FILE_VERSION = "1.0"

// SessionManager persists the remembered hub session for a single login
// server. Each login server gets its own <hostname>.yaml file.
type SessionManager struct {
	lock        sync.Mutex // Ensure thread-safe access
	path        string
	loginServer string
	server      LoginServer
}

type LoginServer struct {
	Version   string         `json:"version" yaml:"version"`
	Timestamp time.Time      `json:"timestamp" yaml:"timestamp"`
	Session   models.Session `json:"session,omitempty" yaml:"session,omitempty"`
}

func NewSessionManager(path string, loginServer string) (*SessionManager, error) {

	if len(loginServer) == 0 || !common.IsValidLoginServer(loginServer) {
		return nil, fmt.Errorf("invalid login server hostname: %s", loginServer)
	}

	if len(path) == 0 {
		path = DEFAULT_SESSION_PATH
	}

	expanded, err := expandHome(path)
	if err != nil {
		return nil, err
	}

	return &SessionManager{
		path:        expanded,
		loginServer: loginServer,
		server:      newLoginServer(),
	}, nil
}

func (m *SessionManager) GetLoginServer() string {
	return m.loginServer
}

// GetFile returns the path of the session file for this login server
func (m *SessionManager) GetFile() string {
	return filepath.Join(m.path, fmt.Sprintf("%s.yaml", m.loginServer))
}

// GetSession returns the remembered session. A missing, empty or corrupt
// session file yields an empty session, not an error.
func (m *SessionManager) GetSession() (models.Session, error) {

	logrus.WithFields(logrus.Fields{
		"loginServer": m.loginServer,
	}).Debugln("Getting local session")

	if err := m.Load(); err != nil {
		return nil, err
	}

	m.lock.Lock()
	defer m.lock.Unlock()

	if !m.server.Session.IsValid() {
		return nil, nil
	}

	return m.server.Session, nil
}

func (m *SessionManager) SaveSession(session models.Session) error {

	logrus.WithFields(logrus.Fields{
		"loginServer": m.loginServer,
		"sessionUUID": session.UUID(),
	}).Debugln("Saving local session")

	m.lock.Lock()
	m.server.Session = session
	m.lock.Unlock()

	return m.Commit()
}

func (m *SessionManager) RemoveSession() error {

	logrus.WithFields(logrus.Fields{
		"loginServer": m.loginServer,
	}).Debugln("Removing local session")

	m.lock.Lock()
	m.server.Session = nil
	m.lock.Unlock()

	return m.Commit()
}

func (m *SessionManager) Commit() error {
	m.lock.Lock()
	defer m.lock.Unlock()

	file, err := m.openSessionFile()
	if err != nil {
		return err
	}
	defer file.Close()

	// Truncate the file to ensure clean write
	if err := file.Truncate(0); err != nil {
		return err
	}

	// Seek to the beginning of the file
	if _, err := file.Seek(0, 0); err != nil {
		return err
	}

	encoder := yaml.NewEncoder(file)
	defer encoder.Close()
	encoder.SetIndent(2)

	m.server.Timestamp = time.Now().UTC()

	return encoder.Encode(m.server)
}

func (m *SessionManager) Load() error {

	logrus.Debugln("Checking sessions for login server:", m.loginServer)

	m.lock.Lock()
	defer m.lock.Unlock()

	file, err := m.openSessionFile()
	if err != nil {
		return err
	}
	defer file.Close()

	// Check if file is empty
	fileInfo, err := file.Stat()
	if err != nil {
		return err
	}

	if fileInfo.Size() == 0 {
		m.server = newLoginServer()
		return nil
	}

	var server LoginServer
	if err := yaml.NewDecoder(file).Decode(&server); err != nil {
		// If YAML parsing fails, log the error and reinitialize
		logrus.WithError(err).Errorf("Failed to parse session file for login server %s, reinitializing", m.loginServer)
		m.server = newLoginServer()
		return nil
	}

	m.server = server

	return nil
}

func (m *SessionManager) openSessionFile() (*os.File, error) {

	// first check if folder exists and if not then create it
	if _, err := os.Stat(m.path); os.IsNotExist(err) {
		if err := os.MkdirAll(m.path, 0700); err != nil {
			return nil, fmt.Errorf("failed to create session directory: %w", err)
		}
	}

	// Only allow read/write access to the owner
	file, err := os.OpenFile(m.GetFile(), os.O_RDWR|os.O_CREATE, 0600)
	if err != nil {
		return nil, fmt.Errorf("failed to open session file: %w", err)
	}
	return file, nil
}

func newLoginServer() LoginServer {
	return LoginServer{
		Version:   SESSION_FILE_VERSION,
		Timestamp: time.Now().UTC(),
	}
}

func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}

	// Get the user's home directory
	usr, err := user.Current()
	if err != nil {
		return "", fmt.Errorf("failed to get current user: %w", err)
	}

	return filepath.Join(usr.HomeDir, strings.TrimPrefix(path, "~")), nil
}
