package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresignRequest_Dir(t *testing.T) {
	tests := []struct {
		name string
		req  PresignRequest
		want string
	}{
		{name: "directory", req: PresignRequest{Directory: "docs"}, want: "docs"},
		{name: "alias", req: PresignRequest{FileDirectory: "legacy"}, want: "legacy"},
		{name: "directory wins", req: PresignRequest{Directory: "a", FileDirectory: "b"}, want: "a"},
		{name: "none", req: PresignRequest{}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.req.Dir())
		})
	}
}

func TestDeleteRequest_WireShape(t *testing.T) {
	var req DeleteRequest
	require.NoError(t, json.Unmarshal([]byte(`{"file":{"key":"a/b.txt","size":3}}`), &req))
	assert.Equal(t, "a/b.txt", req.File.Key)
}
