package config

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func setupTempConfig(t *testing.T) string {
	t.Helper()

	DEV = false
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	if err := SetupConfigDir(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return MINT_CONFIG_DIR
}

func TestEnvFileIsCreatedWithDefaults(t *testing.T) {
	dir := setupTempConfig(t)
	if filepath.Base(dir) != APP_NAME {
		t.Errorf("expected config dir to end with %q, got %q", APP_NAME, dir)
	}

	if err := SetupEnvFile(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if ENVS.OUT != "out.wasm" || ENVS.BACKEND != "wasm" || ENVS.HISTORY != ".mint_history" {
		t.Errorf("unexpected defaults %+v", *ENVS)
	}

	content, err := os.ReadFile(filepath.Join(dir, ENV_FILE))
	if err != nil {
		t.Fatalf("expected the env file to be written: %v", err)
	}
	if string(content) != DEFAULT_ENV_FILE {
		t.Errorf("expected default content, got %q", content)
	}
}

func TestEnvFileIsNotOverwritten(t *testing.T) {
	dir := setupTempConfig(t)

	custom := "# custom\nMINT_OUT = build/id.wasm\n\nnot a pair\nMINT_BACKEND=llvm\n"
	if err := os.WriteFile(filepath.Join(dir, ENV_FILE), []byte(custom), 0644); err != nil {
		t.Fatal(err)
	}

	if err := SetupEnvFile(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ENVS.OUT != "build/id.wasm" {
		t.Errorf("expected MINT_OUT from the file, got %q", ENVS.OUT)
	}
	if ENVS.HISTORY != "" {
		t.Errorf("expected MINT_HISTORY to be unset, got %q", ENVS.HISTORY)
	}
	backend, err := ENVS.Backend()
	if err != nil || backend != LLVM {
		t.Errorf("expected llvm back-end, got %s (%v)", backend, err)
	}
}

func TestParseEnv(t *testing.T) {
	input := "A=1\n  B = two words  \n# C=3\nD\nE==x\n"
	env, err := parseEnv(bufio.NewScanner(strings.NewReader(input)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := map[string]string{"A": "1", "B": "two words", "E": "=x"}
	if len(env) != len(expected) {
		t.Fatalf("expected %v, got %v", expected, env)
	}
	for k, v := range expected {
		if env[k] != v {
			t.Errorf("%s: expected %q, got %q", k, v, env[k])
		}
	}
}

func TestMapEnvToStruct(t *testing.T) {
	var envs Envs
	err := MapEnvToStruct(map[string]string{"MINT_OUT": "a.wasm", "OTHER": "x"}, &envs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if envs.OUT != "a.wasm" || envs.BACKEND != "" {
		t.Errorf("unexpected envs %+v", envs)
	}

	if err := MapEnvToStruct(map[string]string{}, envs); err == nil {
		t.Errorf("expected an error for a non-pointer")
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		envs     *Envs
		backend  Backend
		arg      string
		expected string
	}{
		{&Envs{OUT: "build/m.wasm"}, WASM, "given.wasm", "given.wasm"},
		{&Envs{OUT: "build/m.wasm"}, WASM, "", "build/m.wasm"},
		{&Envs{OUT: "build/m.wasm"}, LLVM, "", "build/m.ll"},
		{&Envs{}, WASM, "", "out.wasm"},
		{&Envs{}, LLVM, "", "out.ll"},
		{nil, WASM, "", "out.wasm"},
	}

	for _, test := range tests {
		if got := test.envs.OutputPath(test.backend, test.arg); got != test.expected {
			t.Errorf("OutputPath(%v, %s, %q): expected %q, got %q", test.envs, test.backend, test.arg, test.expected, got)
		}
	}
}

func TestHistoryPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path, err := (&Envs{HISTORY: ".mint_history"}).HistoryPath()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path != filepath.Join(home, ".mint_history") {
		t.Errorf("unexpected history path %q", path)
	}

	abs := filepath.Join(home, "h")
	if path, _ := (&Envs{HISTORY: abs}).HistoryPath(); path != abs {
		t.Errorf("expected absolute path to be kept, got %q", path)
	}

	if _, err := (&Envs{}).HistoryPath(); err == nil {
		t.Errorf("expected an error when MINT_HISTORY is unset")
	}
}

func TestBackendFromName(t *testing.T) {
	tests := []struct {
		name     string
		expected Backend
		hasError bool
	}{
		{"", WASM, false},
		{"wasm", WASM, false},
		{"llvm", LLVM, false},
		{"jvm", WASM, true},
	}
	for _, test := range tests {
		backend, err := BackendFromName(test.name)
		if backend != test.expected || (err != nil) != test.hasError {
			t.Errorf("BackendFromName(%q): got %s, %v", test.name, backend, err)
		}
	}
	if LLVM.Ext() != ".ll" || WASM.Ext() != ".wasm" {
		t.Errorf("unexpected extensions %q %q", LLVM.Ext(), WASM.Ext())
	}
}

func TestSetDevMode(t *testing.T) {
	defer func() { DEV = false }()

	t.Setenv("MINT_DEV", "")
	SetDevMode(false)
	if DEV {
		t.Errorf("expected dev mode to be off")
	}
	SetDevMode(true)
	if !DEV {
		t.Errorf("expected dev mode to be on")
	}
	t.Setenv("MINT_DEV", "1")
	SetDevMode(false)
	if !DEV {
		t.Errorf("expected MINT_DEV=1 to turn dev mode on")
	}
}
