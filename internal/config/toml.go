package config

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/mvnmin/mvnmin/internal/errors"
)

func decodeTOML(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New(NewFileReadError(path, err))
	}

	file := new(File)

	if err := toml.Unmarshal(data, file); err != nil {
		return nil, errors.New(NewDecodeError(path, err))
	}

	return file, nil
}
