package embedded

import (
	"errors"
	"testing"
	"testing/fstest"
)

// TestIsInitialized 测试初始化状态检测
func TestIsInitialized(t *testing.T) {
	Reset()
	defer Reset()

	if IsInitialized() {
		t.Error("Expected IsInitialized() to return false before Init()")
	}

	Init(fstest.MapFS{})

	if !IsInitialized() {
		t.Error("Expected IsInitialized() to return true after Init()")
	}
}

// TestReadFileNotInitialized 测试未初始化时调用 ReadFile
func TestReadFileNotInitialized(t *testing.T) {
	Reset()

	_, err := ReadFile("data/tiers.yaml")
	if !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Expected ErrNotInitialized, got %v", err)
	}
	if Exists("data/tiers.yaml") {
		t.Error("Exists() should be false before Init()")
	}
}

func TestReadFile(t *testing.T) {
	Reset()
	defer Reset()

	Init(fstest.MapFS{
		"data/tiers.yaml": &fstest.MapFile{Data: []byte("tiers: []")},
	})

	tests := []struct {
		name    string
		path    string
		want    string
		wantErr bool
	}{
		{name: "plain path", path: "data/tiers.yaml", want: "tiers: []"},
		{name: "dot prefix", path: "./data/tiers.yaml", want: "tiers: []"},
		{name: "missing file", path: "data/missing.yaml", wantErr: true},
		{name: "wrong prefix", path: "assets/tiers.yaml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := ReadFile(tt.path)
			if tt.wantErr {
				if err == nil {
					t.Errorf("Expected error for %q", tt.path)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if string(data) != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, string(data))
			}
		})
	}
}

func TestExists(t *testing.T) {
	Reset()
	defer Reset()

	Init(fstest.MapFS{
		"data/game.yaml": &fstest.MapFile{Data: []byte("{}")},
	})

	if !Exists("data/game.yaml") {
		t.Error("data/game.yaml should exist")
	}
	if Exists("data") {
		t.Error("Directories should not be reported as files")
	}
	if Exists("data/other.yaml") {
		t.Error("data/other.yaml should not exist")
	}
}
