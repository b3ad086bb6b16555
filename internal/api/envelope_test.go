package api

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvelope_Err(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantErr  bool
		wantCode int
		wantMsg  string
	}{
		{
			name: "success",
			body: `{"Status":0,"Data":[{"Id":1}],"ErrorMessage":"","ErrorNumber":0}`,
		},
		{
			name:     "failure with message",
			body:     `{"Status":1,"Data":null,"ErrorMessage":"Invalid database","ErrorNumber":104}`,
			wantErr:  true,
			wantCode: 104,
			wantMsg:  "Invalid database (code 104)",
		},
		{
			name:     "error number without status",
			body:     `{"Status":0,"ErrorMessage":"Throttled","ErrorNumber":9}`,
			wantErr:  true,
			wantCode: 9,
			wantMsg:  "Throttled (code 9)",
		},
		{
			name:    "failure without message",
			body:    `{"Status":2}`,
			wantErr: true,
			wantMsg: "the API reported a failure without a message",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var env Envelope
			require.NoError(t, json.Unmarshal([]byte(tt.body), &env))

			err := env.Err()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrAPI))
			assert.Equal(t, tt.wantMsg, err.Error())

			var apiErr *Error
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tt.wantCode, apiErr.Code)
		})
	}
}
