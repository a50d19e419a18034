package ramfat

import (
	"errors"
	"testing"
)

func TestNameFromBytes(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  string
	}{
		{name: "upper cases", input: []byte("log1"), want: "LOG1    "},
		{name: "truncates", input: []byte("verylongname"), want: "VERYLONG"},
		{name: "keeps other bytes", input: []byte("a-1_\x01"), want: "A-1_\x01   "},
		{name: "empty", input: nil, want: "        "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NameFromBytes(tt.input)
			if string(got[:]) != tt.want {
				t.Errorf("NameFromBytes() = %q, want %q", got[:], tt.want)
			}
		})
	}
}

func TestName_String(t *testing.T) {
	if got := ParseName("ab").String(); got != "AB" {
		t.Errorf("String() = %q, want AB", got)
	}
}

func TestName_Valid(t *testing.T) {
	tests := []struct {
		name string
		n    Name
		want bool
	}{
		{name: "regular", n: ParseName("A"), want: true},
		{name: "padding only", n: ParseName(""), want: true},
		{name: "free marker", n: Name{0x00, 'A'}, want: false},
		{name: "deleted marker", n: Name{0xE5, 'A'}, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.n.Valid(); got != tt.want {
				t.Errorf("Valid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func Test_parsePath(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		want     Name
		wantRoot bool
		wantErr  error
	}{
		{name: "root", path: "/", wantRoot: true},
		{name: "dot", path: ".", wantRoot: true},
		{name: "empty", path: "", wantRoot: true},
		{name: "bare name", path: "log1", want: ParseName("LOG1")},
		{name: "with extension", path: "/Log1.txt", want: ParseName("LOG1")},
		{name: "other extension", path: "LOG1.MD", wantErr: ErrInvalidName},
		{name: "too long", path: "LONGERTHAN8.TXT", wantErr: ErrInvalidName},
		{name: "nested", path: "DIR/FILE.TXT", wantErr: ErrNoDirectories},
		{name: "extension only", path: ".TXT", wantErr: ErrInvalidName},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, root, err := parsePath(tt.path)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("parsePath() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("parsePath() error = %v", err)
			}
			if root != tt.wantRoot || got != tt.want {
				t.Errorf("parsePath() = %q, %v, want %q, %v", got[:], root, tt.want[:], tt.wantRoot)
			}
		})
	}
}
