package testutil

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/grovetools/jobslots/pkg/catalog"
	"github.com/grovetools/jobslots/pkg/slots"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

// StationManifest is a small catalog used across package tests.
//
// Security ranks above Service in StationRanking. Detective is listed in
// Security but has no primary department; Clown exists as a job but no
// department lists it.
const StationManifest = `
messages:
  en:
    department-security: Security
    department-service: Service
    department-command: Command
    job-warden: Warden
    job-officer: Security Officer
    job-detective: Detective
    job-cook: Cook
    job-bartender: Bartender
    job-captain: Captain
    job-clown: Clown
departments:
  - id: Command
    name: department-command
    color: "#334E6D"
    primary: true
    roles: [Captain]
  - id: Security
    name: department-security
    color: "#DE3A3A"
    roles: [Warden, SecurityOfficer, Detective]
    primary_for: [Warden, SecurityOfficer]
  - id: Service
    name: department-service
    color: "#9FED58"
    primary: true
    roles: [Cook, Bartender]
jobs:
  - {id: Captain, name: job-captain, weight: 20}
  - {id: Warden, name: job-warden, weight: 10}
  - {id: SecurityOfficer, name: job-officer}
  - {id: Detective, name: job-detective, weight: 5}
  - {id: Cook, name: job-cook, weight: 5}
  - {id: Bartender, name: job-bartender, weight: 5}
  - {id: Clown, name: job-clown}
`

// StationStateYAML is a state snapshot matching StationManifest.
const StationStateYAML = `
jobs:
  Captain: 1
  Warden: 1
  SecurityOfficer: 4
  Detective: 0
  Cook: unlimited
  Bartender: 2
  Clown: 1
blacklisted_jobs: [Detective]
`

// StationRanking is the department ranking used with StationManifest.
var StationRanking = []catalog.DepartmentID{"Command", "Security", "Service"}

// StationCatalog builds the catalog described by StationManifest.
func StationCatalog(t *testing.T) (*catalog.Catalog, catalog.Localizer) {
	t.Helper()

	m, err := catalog.ParseManifest([]byte(StationManifest), "yaml")
	require.NoError(t, err)

	c, loc, err := m.Build(language.English)
	require.NoError(t, err)
	return c, loc
}

// State builds a console state with the given blacklist.
func State(jobs map[catalog.JobID]slots.SlotCount, blacklisted ...catalog.JobID) *slots.ConsoleState {
	return &slots.ConsoleState{Jobs: jobs, BlacklistedJobs: blacklisted}
}

// QuietLogger returns a logger entry that discards output.
func QuietLogger() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.DebugLevel)
	return l.WithField("component", "test")
}

// WriteFile writes content to name inside dir and returns the full path.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
