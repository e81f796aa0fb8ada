package session

import (
	"testing"

	"github.com/grovetools/jobslots/errors"
	"github.com/grovetools/jobslots/pkg/catalog"
	"github.com/grovetools/jobslots/pkg/slots"
	"github.com/grovetools/jobslots/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSnapshot(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name     string
		file     string
		content  string
		want     *slots.ConsoleState
		wantCode errors.ErrorCode
	}{
		{
			name:    "yaml",
			file:    "state.yml",
			content: testutil.StationStateYAML,
			want: &slots.ConsoleState{
				Jobs: map[catalog.JobID]slots.SlotCount{
					"Warden": 1, "SecurityOfficer": 4, "Detective": 0,
					"Cook": slots.Unlimited, "Bartender": 2, "Captain": 1, "Clown": 1,
				},
				BlacklistedJobs: []catalog.JobID{"Detective"},
			},
		},
		{
			name:    "json with null as unlimited",
			file:    "state.json",
			content: `{"jobs": {"Cook": null, "Warden": 2}, "blacklistedJobs": ["Warden"], "debug": true}`,
			want: &slots.ConsoleState{
				Jobs:            map[catalog.JobID]slots.SlotCount{"Cook": slots.Unlimited, "Warden": 2},
				BlacklistedJobs: []catalog.JobID{"Warden"},
				Debug:           true,
			},
		},
		{
			name:    "empty file",
			file:    "empty.yml",
			content: "",
			want:    &slots.ConsoleState{Jobs: map[catalog.JobID]slots.SlotCount{}},
		},
		{
			name:     "negative count",
			file:     "bad.yml",
			content:  "jobs:\n  Cook: -3\n",
			wantCode: errors.ErrCodeStateInvalid,
		},
		{
			name:     "malformed json",
			file:     "bad.json",
			content:  `{"jobs": `,
			wantCode: errors.ErrCodeStateInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := testutil.WriteFile(t, dir, tt.file, tt.content)
			got, err := LoadSnapshot(path)
			if tt.wantCode != "" {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantCode))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadSnapshotMissing(t *testing.T) {
	_, err := LoadSnapshot(t.TempDir() + "/nope.yml")
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeStateInvalid, errors.GetCode(err))
}

func TestDecodeSnapshotNullIsUnlimited(t *testing.T) {
	tests := []struct {
		name   string
		format string
		data   string
	}{
		{"yaml tilde and null", "yaml", "jobs:\n  Cook: ~\n  Warden: null\n  Clown: 3\n"},
		{"yaml empty value", "yaml", "jobs:\n  Cook:\n  Warden: unlimited\n  Clown: 3\n"},
		{"json null", "json", `{"jobs": {"Cook": null, "Warden": null, "Clown": 3}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state, err := DecodeSnapshot([]byte(tt.data), tt.format)
			require.NoError(t, err)
			assert.Equal(t, map[catalog.JobID]slots.SlotCount{
				"Cook":   slots.Unlimited,
				"Warden": slots.Unlimited,
				"Clown":  3,
			}, state.Jobs)
		})
	}
}
