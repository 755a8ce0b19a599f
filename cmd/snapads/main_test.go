package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/snapchat-marketing-api/pkg/apiErrors"
)

func TestRun(t *testing.T) {
	originalExecute, originalStderr := executeCmd, stderr
	t.Cleanup(func() {
		executeCmd, stderr = originalExecute, originalStderr
	})

	tests := []struct {
		name     string
		err      error
		wantCode int
		wantOut  string
	}{
		{
			name:     "success",
			wantCode: 0,
		},
		{
			name:     "argument error",
			err:      apiErrors.NewArgumentError("The campaign ID is required"),
			wantCode: 1,
			wantOut:  "ARGUMENT error: The campaign ID is required\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			stderr = &out
			executeCmd = func(context.Context, []string) error { return tt.err }

			assert.Equal(t, tt.wantCode, run([]string{"campaigns", "get"}))
			assert.Equal(t, tt.wantOut, out.String())
		})
	}
}
