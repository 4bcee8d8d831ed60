package config

import (
	"bufio"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
)

var (
	APP_NAME = "mint"
	ENV_FILE = "env"
)

var DEFAULT_ENV_FILE string = `MINT_OUT=out.wasm
MINT_BACKEND=wasm
MINT_HISTORY=.mint_history
`

//go:embed env
var DEFAULT_DEV_ENV_FILE string

var MINT_CONFIG_DIR string

var ENVS *Envs

type Envs struct {
	OUT     string `env:"MINT_OUT"`
	BACKEND string `env:"MINT_BACKEND"`
	HISTORY string `env:"MINT_HISTORY"`
}

func (e *Envs) ShowAll() {
	v := reflect.ValueOf(e)

	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}

	for i := range v.NumField() {
		field := v.Type().Field(i)
		fieldValue := v.Field(i)

		envTag := field.Tag.Get("env")
		if envTag != "" {
			fmt.Printf("%s='%s'\n", envTag, fieldValue.String())
		}
	}
}

// Backend is the back end named by MINT_BACKEND
func (e *Envs) Backend() (Backend, error) {
	return BackendFromName(e.BACKEND)
}

// OutputPath picks where a compiled module goes: the CLI argument when given,
// else MINT_OUT with the extension of the back end, else out.<ext>
func (e *Envs) OutputPath(backend Backend, arg string) string {
	if arg != "" {
		return arg
	}
	if e == nil || e.OUT == "" {
		return "out" + backend.Ext()
	}
	return strings.TrimSuffix(e.OUT, filepath.Ext(e.OUT)) + backend.Ext()
}

// HistoryPath resolves MINT_HISTORY against the home directory
func (e *Envs) HistoryPath() (string, error) {
	if e == nil || e.HISTORY == "" {
		return "", fmt.Errorf("MINT_HISTORY is not set")
	}
	if filepath.IsAbs(e.HISTORY) {
		return e.HISTORY, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, e.HISTORY), nil
}

func SetupConfigDir() error {
	mintCfgDir, err := getConfigDir(APP_NAME)
	if err != nil {
		return err
	}
	MINT_CONFIG_DIR = mintCfgDir
	return nil
}

func SetupEnvFile() error {
	envFile := filepath.Join(MINT_CONFIG_DIR, ENV_FILE)
	envs, err := loadMintEnvFile(envFile)
	if err != nil {
		return err
	}

	parsedEnvs := Envs{}
	err = MapEnvToStruct(envs, &parsedEnvs)
	if err != nil {
		return err
	}

	ENVS = &parsedEnvs
	return nil
}

func getConfigDir(appName string) (string, error) {
	var configDir string

	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		configDir = filepath.Join(configHome, appName)
	} else if homeDir, err := os.UserHomeDir(); err == nil {
		if os.Getenv("OS") == "Windows_NT" {
			configDir = filepath.Join(os.Getenv("APPDATA"), appName)
		} else {
			configDir = filepath.Join(homeDir, ".config", appName)
		}
	} else {
		return "", fmt.Errorf("could not determine home directory")
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return "", err
	}

	return configDir, nil
}

func loadMintEnvFile(path string) (map[string]string, error) {
	_, err := os.Stat(path)
	envFileCreated := os.IsNotExist(err)
	if err != nil && !envFileCreated {
		return nil, err
	}

	// NOTE: a dev build rewrites the env file on every run, the defaults
	// change while working on the compiler
	if DEV {
		envFileCreated = true
	}

	if envFileCreated {
		content := DEFAULT_ENV_FILE
		if DEV {
			content = DEFAULT_DEV_ENV_FILE
		}
		if err := writeStringToFile(path, content); err != nil {
			return nil, err
		}
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return parseEnv(bufio.NewScanner(file))
}

// parseEnv reads KEY=VALUE lines, skipping blanks, # comments and lines with
// no '='
func parseEnv(scanner *bufio.Scanner) (map[string]string, error) {
	env := make(map[string]string)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if len(line) == 0 || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])
		env[key] = value
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return env, nil
}

func writeStringToFile(fileName, content string) error {
	file, err := os.OpenFile(fileName, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	defer file.Close()

	_, err = file.WriteString(content)
	return err
}

func MapEnvToStruct(data map[string]string, result any) error {
	v := reflect.ValueOf(result)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("expected a pointer to a struct, got %T", result)
	}
	v = v.Elem()
	t := v.Type()

	for i := range t.NumField() {
		field := t.Field(i)
		fieldValue := v.Field(i)

		envTag := field.Tag.Get("env")
		if envTag != "" {
			if value, ok := data[envTag]; ok {
				if fieldValue.CanSet() && fieldValue.Kind() == reflect.String {
					fieldValue.SetString(value)
				}
			}
		}
	}

	return nil
}
