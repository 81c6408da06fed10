package options

import (
	"bytes"
	"errors"
	"testing"

	"tableflip.dev/tcutils/pkg/catalog"
)

func TestHandleError(t *testing.T) {
	boom := errors.New("boom")

	tests := map[string]struct {
		json    bool
		err     error
		want    string
		wantErr error
	}{
		"plain passes through": {err: boom, wantErr: boom},
		"json nil":             {json: true},
		"json":                 {json: true, err: boom, want: "{\"error\":\"boom\"}\n"},
		"json io error": {
			json: true,
			err:  &catalog.IOError{Op: "read", Path: "/Lib/list.txt", Err: boom},
			want: "{\"error\":\"read /Lib/list.txt: boom\",\"op\":\"read\",\"path\":\"/Lib/list.txt\"}\n",
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			o := OutputOptions{JSON: tc.json, Out: &buf}
			if err := o.HandleError(tc.err); !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
			if got := buf.String(); got != tc.want {
				t.Fatalf("printed %q, want %q", got, tc.want)
			}
		})
	}
}
