package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hashicorp-forge/padclient/pkg/etherpad"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		value   any
		want    string
		wantErr bool
	}{
		{
			name:   "nil renders ok",
			format: FormatJSON,
			want:   "ok",
		},
		{
			name:   "json",
			format: FormatJSON,
			value:  etherpad.Text{Text: "hello"},
			want:   "{\n  \"text\": \"hello\"\n}",
		},
		{
			name:   "default is json",
			value:  etherpad.GroupID{GroupID: "g.1"},
			want:   "{\n  \"groupID\": \"g.1\"\n}",
		},
		{
			name:   "yaml",
			format: FormatYAML,
			value:  etherpad.PadIDs{PadIDs: []string{"g.1$a", "g.1$b"}},
			want:   "padIDs:\n    - g.1$a\n    - g.1$b",
		},
		{
			name:   "yaml bool",
			format: FormatYAML,
			value:  etherpad.PublicStatus{PublicStatus: true},
			want:   "publicStatus: true",
		},
		{
			name:    "unknown format",
			format:  "xml",
			value:   etherpad.Text{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Render(tt.format, tt.value)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "json, yaml")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
