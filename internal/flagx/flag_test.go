package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

var serverFlags = []string{"-a", "-b", "-e", "-ut"}

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		owned []string
		bools []string
		want  []string
	}{
		{
			name:  "picks owned flags with separate values",
			args:  []string{"-a", ":8080", "-c", "server.json", "-b", "files"},
			owned: serverFlags,
			want:  []string{"-a", ":8080", "-b", "files"},
		},
		{
			name:  "joined form is kept whole",
			args:  []string{"-e=http://127.0.0.1:9000/", "-x=1"},
			owned: serverFlags,
			want:  []string{"-e=http://127.0.0.1:9000/"},
		},
		{
			name:  "joined value may itself start with a dash",
			args:  []string{"-config=--odd.json"},
			owned: []string{"-config"},
			want:  []string{"-config=--odd.json"},
		},
		{
			name:  "nothing owned yields empty, non-nil",
			args:  []string{"-x", "1", "positional"},
			owned: serverFlags,
			want:  []string{},
		},
		{
			name:  "trailing flag without value",
			args:  []string{"-b"},
			owned: serverFlags,
			want:  []string{"-b"},
		},
		{
			name:  "next dash token is not taken as value",
			args:  []string{"-b", "-a", ":9090"},
			owned: serverFlags,
			want:  []string{"-b", "-a", ":9090"},
		},
		{
			name:  "order and repeats are preserved",
			args:  []string{"-ut", "60", "-b", "one", "-ut", "120"},
			owned: serverFlags,
			want:  []string{"-ut", "60", "-b", "one", "-ut", "120"},
		},
		{
			name:  "switch does not swallow positional",
			args:  []string{"-path-style", "positional", "-b", "files"},
			owned: serverFlags,
			bools: []string{"-path-style"},
			want:  []string{"-path-style", "-b", "files"},
		},
		{
			name:  "switch turned off explicitly",
			args:  []string{"-require-auth=false"},
			bools: []string{"-require-auth"},
			want:  []string{"-require-auth=false"},
		},
		{
			name: "empty args",
			args: []string{},
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterArgs(tt.args, tt.owned, tt.bools...)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestJsonConfigFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"short", []string{"-c", "/etc/bucketdrop.json"}, "/etc/bucketdrop.json"},
		{"long", []string{"-config", "server.json", "-a", ":8080"}, "server.json"},
		{"joined", []string{"-config=joined.json"}, "joined.json"},
		{"absent", []string{"-b", "files", "-path-style"}, ""},
		{"last wins", []string{"-c", "1.json", "-config", "2.json"}, "2.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = append([]string{"bucketdrop"}, tt.args...)
			assert.Equal(t, tt.want, JsonConfigFlags())
		})
	}
}
