// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateMigrateArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{name: "no args", args: nil},
		{name: "up", args: []string{"up"}},
		{name: "up to version", args: []string{"up", "20260101000001"}},
		{name: "down to zero", args: []string{"down", "0"}},
		{name: "status", args: []string{"status"}},
		{name: "unknown command", args: []string{"redo"}, wantErr: true},
		{name: "status with version", args: []string{"status", "1"}, wantErr: true},
		{name: "negative version", args: []string{"down", "-1"}, wantErr: true},
		{name: "non numeric version", args: []string{"up", "latest"}, wantErr: true},
		{name: "too many args", args: []string{"down", "1", "2"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateMigrateArgs(migrateCmd, tt.args)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestParseMigrateArgs(t *testing.T) {
	command, version := parseMigrateArgs(nil)
	assert.Equal(t, "up", command)
	assert.Equal(t, noVersion, version)

	command, version = parseMigrateArgs([]string{"down", "3"})
	assert.Equal(t, "down", command)
	assert.Equal(t, int64(3), version)
}
